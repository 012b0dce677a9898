package properties

import "github.com/jacoelho/cssq/internal/css/ast"

type entry struct {
	groups    ast.PropertyGroup
	shorthand bool
}

func longhand(g ast.PropertyGroup) entry  { return entry{groups: g} }
func shorthand(g ast.PropertyGroup) entry { return entry{groups: g, shorthand: true} }

var catalog = map[string]entry{
	// align
	"align-content":   longhand(ast.GroupAlign),
	"align-items":     longhand(ast.GroupAlign),
	"align-self":      longhand(ast.GroupAlign),
	"justify-content": longhand(ast.GroupAlign),
	"justify-items":   longhand(ast.GroupAlign),
	"justify-self":    longhand(ast.GroupAlign),
	"place-content":   shorthand(ast.GroupAlign),
	"place-items":     shorthand(ast.GroupAlign),
	"place-self":      shorthand(ast.GroupAlign),

	// gaps
	"gap":        shorthand(ast.GroupGaps | ast.GroupAlign),
	"row-gap":    longhand(ast.GroupGaps | ast.GroupAlign),
	"column-gap": longhand(ast.GroupGaps | ast.GroupAlign | ast.GroupMulticol),

	// anchor positioning
	"anchor-name":            longhand(ast.GroupAnchorPosition),
	"position-anchor":        longhand(ast.GroupAnchorPosition),
	"position-area":          longhand(ast.GroupAnchorPosition),
	"position-try":           shorthand(ast.GroupAnchorPosition),
	"position-try-fallbacks": longhand(ast.GroupAnchorPosition),
	"position-visibility":    longhand(ast.GroupAnchorPosition),
	"anchor-scope":           longhand(ast.GroupAnchorPosition),

	// animations
	"animation":                 shorthand(ast.GroupAnimations),
	"animation-name":            longhand(ast.GroupAnimations),
	"animation-duration":        longhand(ast.GroupAnimations),
	"animation-timing-function": longhand(ast.GroupAnimations),
	"animation-delay":           longhand(ast.GroupAnimations),
	"animation-iteration-count": longhand(ast.GroupAnimations),
	"animation-direction":       longhand(ast.GroupAnimations),
	"animation-fill-mode":       longhand(ast.GroupAnimations),
	"animation-play-state":      longhand(ast.GroupAnimations),
	"animation-composition":     longhand(ast.GroupAnimations),

	// backgrounds and borders
	"background":            shorthand(ast.GroupBackgrounds),
	"background-color":      longhand(ast.GroupBackgrounds | ast.GroupColor),
	"background-image":      longhand(ast.GroupBackgrounds | ast.GroupImages),
	"background-repeat":     longhand(ast.GroupBackgrounds),
	"background-position":   shorthand(ast.GroupBackgrounds),
	"background-position-x": longhand(ast.GroupBackgrounds),
	"background-position-y": longhand(ast.GroupBackgrounds),
	"background-size":       longhand(ast.GroupBackgrounds),
	"background-attachment": longhand(ast.GroupBackgrounds),
	"background-origin":     longhand(ast.GroupBackgrounds),
	"background-clip":       longhand(ast.GroupBackgrounds),
	"background-blend-mode": longhand(ast.GroupBackgrounds),
	"box-shadow":            longhand(ast.GroupBackgrounds | ast.GroupBorders),
	"border":                shorthand(ast.GroupBorders),
	"border-top":            shorthand(ast.GroupBorders),
	"border-right":          shorthand(ast.GroupBorders),
	"border-bottom":         shorthand(ast.GroupBorders),
	"border-left":           shorthand(ast.GroupBorders),
	"border-width":          shorthand(ast.GroupBorders),
	"border-style":          shorthand(ast.GroupBorders),
	"border-color":          shorthand(ast.GroupBorders | ast.GroupColor),
	"border-top-width":      longhand(ast.GroupBorders),
	"border-right-width":    longhand(ast.GroupBorders),
	"border-bottom-width":   longhand(ast.GroupBorders),
	"border-left-width":     longhand(ast.GroupBorders),
	"border-top-style":      longhand(ast.GroupBorders),
	"border-right-style":    longhand(ast.GroupBorders),
	"border-bottom-style":   longhand(ast.GroupBorders),
	"border-left-style":     longhand(ast.GroupBorders),
	"border-top-color":      longhand(ast.GroupBorders | ast.GroupColor),
	"border-right-color":    longhand(ast.GroupBorders | ast.GroupColor),
	"border-bottom-color":   longhand(ast.GroupBorders | ast.GroupColor),
	"border-left-color":     longhand(ast.GroupBorders | ast.GroupColor),
	"border-radius":         shorthand(ast.GroupBorders),
	"border-top-left-radius":     longhand(ast.GroupBorders),
	"border-top-right-radius":    longhand(ast.GroupBorders),
	"border-bottom-right-radius": longhand(ast.GroupBorders),
	"border-bottom-left-radius":  longhand(ast.GroupBorders),
	"border-image":          shorthand(ast.GroupBorders | ast.GroupImages),
	"border-image-source":   longhand(ast.GroupBorders | ast.GroupImages),
	"border-image-slice":    longhand(ast.GroupBorders),
	"border-image-width":    longhand(ast.GroupBorders),
	"border-image-outset":   longhand(ast.GroupBorders),
	"border-image-repeat":   longhand(ast.GroupBorders),
	"border-collapse":       longhand(ast.GroupTables | ast.GroupBorders),
	"border-spacing":        longhand(ast.GroupTables | ast.GroupBorders),
	"border-inline":         shorthand(ast.GroupBorders | ast.GroupLogical),
	"border-block":          shorthand(ast.GroupBorders | ast.GroupLogical),
	"border-inline-start":   shorthand(ast.GroupBorders | ast.GroupLogical),
	"border-inline-end":     shorthand(ast.GroupBorders | ast.GroupLogical),
	"border-block-start":    shorthand(ast.GroupBorders | ast.GroupLogical),
	"border-block-end":      shorthand(ast.GroupBorders | ast.GroupLogical),

	// box model
	"margin":          shorthand(ast.GroupBox),
	"margin-top":      longhand(ast.GroupBox),
	"margin-right":    longhand(ast.GroupBox),
	"margin-bottom":   longhand(ast.GroupBox),
	"margin-left":     longhand(ast.GroupBox),
	"padding":         shorthand(ast.GroupBox),
	"padding-top":     longhand(ast.GroupBox),
	"padding-right":   longhand(ast.GroupBox),
	"padding-bottom":  longhand(ast.GroupBox),
	"padding-left":    longhand(ast.GroupBox),
	"margin-inline":   shorthand(ast.GroupBox | ast.GroupLogical),
	"margin-block":    shorthand(ast.GroupBox | ast.GroupLogical),
	"padding-inline":  shorthand(ast.GroupBox | ast.GroupLogical),
	"padding-block":   shorthand(ast.GroupBox | ast.GroupLogical),
	"margin-inline-start":  longhand(ast.GroupBox | ast.GroupLogical),
	"margin-inline-end":    longhand(ast.GroupBox | ast.GroupLogical),
	"padding-inline-start": longhand(ast.GroupBox | ast.GroupLogical),
	"padding-inline-end":   longhand(ast.GroupBox | ast.GroupLogical),

	// fragmentation
	"break-before":  longhand(ast.GroupBreak),
	"break-after":   longhand(ast.GroupBreak),
	"break-inside":  longhand(ast.GroupBreak),
	"orphans":       longhand(ast.GroupBreak),
	"widows":        longhand(ast.GroupBreak),
	"box-decoration-break": longhand(ast.GroupBreak),

	// cascade
	"all": shorthand(ast.GroupCascade),

	// color
	"color":         longhand(ast.GroupColor),
	"opacity":       longhand(ast.GroupColor),
	"color-scheme":  longhand(ast.GroupColorAdjust),
	"forced-color-adjust": longhand(ast.GroupColorAdjust),
	"print-color-adjust":  longhand(ast.GroupColorAdjust),
	"accent-color":  longhand(ast.GroupUI | ast.GroupColor),
	"caret-color":   longhand(ast.GroupUI | ast.GroupColor),

	// containment
	"contain":                  longhand(ast.GroupContain),
	"content-visibility":       longhand(ast.GroupContain),
	"container":                shorthand(ast.GroupConditional),
	"container-name":           longhand(ast.GroupConditional),
	"container-type":           longhand(ast.GroupConditional),
	"contain-intrinsic-size":   shorthand(ast.GroupSizing),
	"contain-intrinsic-width":  longhand(ast.GroupSizing),
	"contain-intrinsic-height": longhand(ast.GroupSizing),

	// generated content
	"content":           longhand(ast.GroupContent),
	"quotes":            longhand(ast.GroupContent),
	"counter-reset":     longhand(ast.GroupLists),
	"counter-increment": longhand(ast.GroupLists),
	"counter-set":       longhand(ast.GroupLists),

	// display
	"display":    longhand(ast.GroupDisplay),
	"visibility": longhand(ast.GroupDisplay),
	"order":      longhand(ast.GroupDisplay | ast.GroupFlexbox),

	// flexbox
	"flex":           shorthand(ast.GroupFlexbox),
	"flex-grow":      longhand(ast.GroupFlexbox),
	"flex-shrink":    longhand(ast.GroupFlexbox),
	"flex-basis":     longhand(ast.GroupFlexbox),
	"flex-flow":      shorthand(ast.GroupFlexbox),
	"flex-direction": longhand(ast.GroupFlexbox),
	"flex-wrap":      longhand(ast.GroupFlexbox),

	// fonts
	"font":                    shorthand(ast.GroupFonts),
	"font-family":             longhand(ast.GroupFonts),
	"font-size":               longhand(ast.GroupFonts),
	"font-style":              longhand(ast.GroupFonts),
	"font-weight":             longhand(ast.GroupFonts),
	"font-stretch":            longhand(ast.GroupFonts),
	"font-variant":            shorthand(ast.GroupFonts),
	"font-feature-settings":   longhand(ast.GroupFonts),
	"font-variation-settings": longhand(ast.GroupFonts),
	"font-display":            longhand(ast.GroupFonts),
	"font-kerning":            longhand(ast.GroupFonts),
	"font-optical-sizing":     longhand(ast.GroupFonts),
	"font-size-adjust":        longhand(ast.GroupFonts),
	"line-height":             longhand(ast.GroupInline | ast.GroupFonts),
	"src":                     longhand(ast.GroupFonts),
	"unicode-range":           longhand(ast.GroupFonts),

	// grid
	"grid":                  shorthand(ast.GroupGrid),
	"grid-template":         shorthand(ast.GroupGrid),
	"grid-template-columns": longhand(ast.GroupGrid),
	"grid-template-rows":    longhand(ast.GroupGrid),
	"grid-template-areas":   longhand(ast.GroupGrid),
	"grid-auto-columns":     longhand(ast.GroupGrid),
	"grid-auto-rows":        longhand(ast.GroupGrid),
	"grid-auto-flow":        longhand(ast.GroupGrid),
	"grid-area":             shorthand(ast.GroupGrid),
	"grid-row":              shorthand(ast.GroupGrid),
	"grid-column":           shorthand(ast.GroupGrid),
	"grid-row-start":        longhand(ast.GroupGrid),
	"grid-row-end":          longhand(ast.GroupGrid),
	"grid-column-start":     longhand(ast.GroupGrid),
	"grid-column-end":       longhand(ast.GroupGrid),

	// images
	"object-fit":        longhand(ast.GroupImages),
	"object-position":   longhand(ast.GroupImages),
	"image-rendering":   longhand(ast.GroupImages),
	"image-orientation": longhand(ast.GroupImages),

	// inline layout
	"vertical-align":    shorthand(ast.GroupInline),
	"dominant-baseline": longhand(ast.GroupInline),
	"alignment-baseline": longhand(ast.GroupInline),

	// lists
	"list-style":          shorthand(ast.GroupLists),
	"list-style-type":     longhand(ast.GroupLists),
	"list-style-position": longhand(ast.GroupLists),
	"list-style-image":    longhand(ast.GroupLists | ast.GroupImages),

	// logical
	"inset-inline":       shorthand(ast.GroupLogical | ast.GroupPosition),
	"inset-block":        shorthand(ast.GroupLogical | ast.GroupPosition),
	"inline-size":        longhand(ast.GroupLogical | ast.GroupSizing),
	"block-size":         longhand(ast.GroupLogical | ast.GroupSizing),
	"min-inline-size":    longhand(ast.GroupLogical | ast.GroupSizing),
	"max-inline-size":    longhand(ast.GroupLogical | ast.GroupSizing),
	"min-block-size":     longhand(ast.GroupLogical | ast.GroupSizing),
	"max-block-size":     longhand(ast.GroupLogical | ast.GroupSizing),

	// masking
	"clip-path":  longhand(ast.GroupMasking),
	"clip":       longhand(ast.GroupMasking),
	"mask":       shorthand(ast.GroupMasking),
	"mask-image": longhand(ast.GroupMasking | ast.GroupImages),
	"mask-mode":  longhand(ast.GroupMasking),
	"mask-size":  longhand(ast.GroupMasking),

	// multicol
	"columns":      shorthand(ast.GroupMulticol),
	"column-count": longhand(ast.GroupMulticol),
	"column-width": longhand(ast.GroupMulticol),
	"column-rule":  shorthand(ast.GroupMulticol),
	"column-span":  longhand(ast.GroupMulticol),
	"column-fill":  longhand(ast.GroupMulticol),

	// overflow
	"overflow":           shorthand(ast.GroupOverflow),
	"overflow-x":         longhand(ast.GroupOverflow),
	"overflow-y":         longhand(ast.GroupOverflow),
	"overflow-wrap":      longhand(ast.GroupText),
	"text-overflow":      longhand(ast.GroupOverflow),
	"scroll-behavior":    longhand(ast.GroupOverflow),
	"line-clamp":         shorthand(ast.GroupOverflow),
	"overscroll-behavior":   shorthand(ast.GroupOverscroll),
	"overscroll-behavior-x": longhand(ast.GroupOverscroll),
	"overscroll-behavior-y": longhand(ast.GroupOverscroll),

	// paged media
	"page": longhand(ast.GroupPage),
	"size": longhand(ast.GroupPage),

	// positioning
	"position": longhand(ast.GroupPosition),
	"top":      longhand(ast.GroupPosition),
	"right":    longhand(ast.GroupPosition),
	"bottom":   longhand(ast.GroupPosition),
	"left":     longhand(ast.GroupPosition),
	"inset":    shorthand(ast.GroupPosition),
	"z-index":  longhand(ast.GroupPosition),
	"float":    longhand(ast.GroupPosition),
	"clear":    longhand(ast.GroupPosition),

	// ruby
	"ruby-position": longhand(ast.GroupRuby),
	"ruby-align":    longhand(ast.GroupRuby),

	// scroll snap and scrollbars
	"scroll-snap-type":  longhand(ast.GroupScrollSnap),
	"scroll-snap-align": longhand(ast.GroupScrollSnap),
	"scroll-snap-stop":  longhand(ast.GroupScrollSnap),
	"scroll-margin":     shorthand(ast.GroupScrollSnap),
	"scroll-padding":    shorthand(ast.GroupScrollSnap),
	"scrollbar-color":   longhand(ast.GroupScrollbars | ast.GroupColor),
	"scrollbar-width":   longhand(ast.GroupScrollbars),
	"scrollbar-gutter":  longhand(ast.GroupOverflow),

	// shapes
	"shape-outside":      longhand(ast.GroupShapes),
	"shape-margin":       longhand(ast.GroupShapes),
	"shape-image-threshold": longhand(ast.GroupShapes),

	// sizing
	"width":        longhand(ast.GroupSizing),
	"height":       longhand(ast.GroupSizing),
	"min-width":    longhand(ast.GroupSizing),
	"min-height":   longhand(ast.GroupSizing),
	"max-width":    longhand(ast.GroupSizing),
	"max-height":   longhand(ast.GroupSizing),
	"box-sizing":   longhand(ast.GroupSizing),
	"aspect-ratio": longhand(ast.GroupSizing),

	// speech
	"speak":        longhand(ast.GroupSpeech),
	"speak-as":     longhand(ast.GroupSpeech),

	// tables
	"table-layout": longhand(ast.GroupTables),
	"caption-side": longhand(ast.GroupTables),
	"empty-cells":  longhand(ast.GroupTables),

	// text
	"text-align":      longhand(ast.GroupText),
	"text-align-last": longhand(ast.GroupText),
	"text-indent":     longhand(ast.GroupText),
	"text-transform":  longhand(ast.GroupText),
	"text-wrap":       shorthand(ast.GroupText),
	"white-space":     shorthand(ast.GroupText),
	"word-break":      longhand(ast.GroupText),
	"word-spacing":    longhand(ast.GroupText),
	"letter-spacing":  longhand(ast.GroupText),
	"hyphens":         longhand(ast.GroupText),
	"tab-size":        longhand(ast.GroupText),
	"direction":       longhand(ast.GroupWritingModes),
	"unicode-bidi":    longhand(ast.GroupWritingModes),
	"writing-mode":    longhand(ast.GroupWritingModes),
	"text-orientation": longhand(ast.GroupWritingModes),

	// text decoration
	"text-decoration":           shorthand(ast.GroupTextDecor),
	"text-decoration-line":      longhand(ast.GroupTextDecor),
	"text-decoration-color":     longhand(ast.GroupTextDecor | ast.GroupColor),
	"text-decoration-style":     longhand(ast.GroupTextDecor),
	"text-decoration-thickness": longhand(ast.GroupTextDecor),
	"text-underline-offset":     longhand(ast.GroupTextDecor),
	"text-shadow":               longhand(ast.GroupTextDecor),
	"text-emphasis":             shorthand(ast.GroupTextDecor),

	// transforms
	"transform":           longhand(ast.GroupTransforms),
	"transform-origin":    longhand(ast.GroupTransforms),
	"transform-style":     longhand(ast.GroupTransforms),
	"transform-box":       longhand(ast.GroupTransforms),
	"translate":           longhand(ast.GroupTransforms),
	"rotate":              longhand(ast.GroupTransforms),
	"scale":               longhand(ast.GroupTransforms),
	"perspective":         longhand(ast.GroupTransforms),
	"perspective-origin":  longhand(ast.GroupTransforms),
	"backface-visibility": longhand(ast.GroupTransforms),

	// transitions
	"transition":                 shorthand(ast.GroupTransitions),
	"transition-property":        longhand(ast.GroupTransitions),
	"transition-duration":        longhand(ast.GroupTransitions),
	"transition-timing-function": longhand(ast.GroupTransitions),
	"transition-delay":           longhand(ast.GroupTransitions),
	"transition-behavior":        longhand(ast.GroupTransitions),

	// ui
	"cursor":         longhand(ast.GroupUI),
	"outline":        shorthand(ast.GroupUI),
	"outline-color":  longhand(ast.GroupUI | ast.GroupColor),
	"outline-style":  longhand(ast.GroupUI),
	"outline-width":  longhand(ast.GroupUI),
	"outline-offset": longhand(ast.GroupUI),
	"appearance":     longhand(ast.GroupUI),
	"pointer-events": longhand(ast.GroupUI),
	"resize":         longhand(ast.GroupUI),
	"user-select":    longhand(ast.GroupUI),

	// view transitions and will-change
	"view-transition-name":  longhand(ast.GroupViewTransitions),
	"view-transition-class": longhand(ast.GroupViewTransitions),
	"will-change":           longhand(ast.GroupWillChange),

	// filter effects and compositing
	"filter":          longhand(ast.GroupImages),
	"backdrop-filter": longhand(ast.GroupImages),
	"mix-blend-mode":  longhand(ast.GroupBackgrounds),
	"isolation":       longhand(ast.GroupBackgrounds),
}
