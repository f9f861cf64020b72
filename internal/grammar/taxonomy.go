package grammar

// DefaultTaxonomy is the built-in group tree. Order is significant: the
// parser stops at the first matching leaf, so narrower stems precede the
// broader stems they share a prefix with (border width before border color,
// font size before text color).
func DefaultTaxonomy() []Node {
	return []Node{
		&Group{Name: "Arbitrary Properties", Children: []Node{
			&Leaf{Name: "arbitrary-properties", Template: `${arbitraryProperties}`},
		}},

		&Group{Name: "Dark Mode", Children: []Node{
			&Leaf{Name: "dark", Template: `${dark}`},
		}},

		&Group{Name: "Layout", Children: []Node{
			&Group{Name: "Overflow", Children: []Node{
				&Leaf{Name: "overflow-x", Template: `overflow-x-(?P<value>auto|hidden|clip|visible|scroll)`, Shorthand: AxisX, Body: "overflow-x-"},
				&Leaf{Name: "overflow-y", Template: `overflow-y-(?P<value>auto|hidden|clip|visible|scroll)`, Shorthand: AxisY, Body: "overflow-y-"},
				&Leaf{Name: "overflow", Template: `overflow-(?P<value>auto|hidden|clip|visible|scroll)`, Shorthand: AxisAll, Body: "overflow-"},
			}},
			&Group{Name: "Text Overflow", Children: []Node{
				&Leaf{Name: "text-overflow", Template: `(?P<value>truncate|text-ellipsis|text-clip)`},
				&Leaf{Name: "text-overflow-legacy", Template: `(?P<value>overflow-ellipsis)`, Deprecated: true},
			}},
			&Group{Name: "Whitespace", Children: []Node{
				&Leaf{Name: "whitespace", Template: `whitespace-(?P<value>normal|nowrap|pre-line|pre-wrap|pre|break-spaces)`, Body: "whitespace-"},
			}},
			&Group{Name: "Inset", Children: []Node{
				&Leaf{Name: "inset-x", Template: `inset-x-${inset}|-inset-x-${-inset}`, ConfigKey: "inset", Shorthand: AxisX, Body: "inset-x-"},
				&Leaf{Name: "inset-y", Template: `inset-y-${inset}|-inset-y-${-inset}`, ConfigKey: "inset", Shorthand: AxisY, Body: "inset-y-"},
				&Leaf{Name: "inset", Template: `inset-${inset}|-inset-${-inset}`, ConfigKey: "inset", Shorthand: AxisAll, Body: "inset-"},
				&Leaf{Name: "top", Template: `top-${inset}|-top-${-inset}`, ConfigKey: "inset", Shorthand: AxisTop, Body: "top-"},
				&Leaf{Name: "right", Template: `right-${inset}|-right-${-inset}`, ConfigKey: "inset", Shorthand: AxisRight, Body: "right-"},
				&Leaf{Name: "bottom", Template: `bottom-${inset}|-bottom-${-inset}`, ConfigKey: "inset", Shorthand: AxisBottom, Body: "bottom-"},
				&Leaf{Name: "left", Template: `left-${inset}|-left-${-inset}`, ConfigKey: "inset", Shorthand: AxisLeft, Body: "left-"},
			}},
		}},

		&Group{Name: "Flexbox & Grid", Children: []Node{
			&Group{Name: "Gap", Children: []Node{
				&Leaf{Name: "gap-x", Template: `gap-x-${gap}`, ConfigKey: "gap", Shorthand: AxisX, Body: "gap-x-"},
				&Leaf{Name: "gap-y", Template: `gap-y-${gap}`, ConfigKey: "gap", Shorthand: AxisY, Body: "gap-y-"},
				&Leaf{Name: "gap", Template: `gap-${gap}`, ConfigKey: "gap", Shorthand: AxisAll, Body: "gap-"},
			}},
			&Group{Name: "Grid Lines", Children: []Node{
				&Leaf{Name: "grid-column-start", Template: `col-start-${gridColumnStart}`, ConfigKey: "gridColumnStart", Body: "col-start-"},
				&Leaf{Name: "grid-column-end", Template: `col-end-${gridColumnEnd}`, ConfigKey: "gridColumnEnd", Body: "col-end-"},
				&Leaf{Name: "grid-row-start", Template: `row-start-${gridRowStart}`, ConfigKey: "gridRowStart", Body: "row-start-"},
				&Leaf{Name: "grid-row-end", Template: `row-end-${gridRowEnd}`, ConfigKey: "gridRowEnd", Body: "row-end-"},
			}},
		}},

		&Group{Name: "Spacing", Children: []Node{
			&Group{Name: "Padding", Children: []Node{
				&Leaf{Name: "padding-x", Template: `px-${padding}`, ConfigKey: "padding", Shorthand: AxisX, Body: "px-"},
				&Leaf{Name: "padding-y", Template: `py-${padding}`, ConfigKey: "padding", Shorthand: AxisY, Body: "py-"},
				&Leaf{Name: "padding-top", Template: `pt-${padding}`, ConfigKey: "padding", Shorthand: AxisTop, Body: "pt-"},
				&Leaf{Name: "padding-right", Template: `pr-${padding}`, ConfigKey: "padding", Shorthand: AxisRight, Body: "pr-"},
				&Leaf{Name: "padding-bottom", Template: `pb-${padding}`, ConfigKey: "padding", Shorthand: AxisBottom, Body: "pb-"},
				&Leaf{Name: "padding-left", Template: `pl-${padding}`, ConfigKey: "padding", Shorthand: AxisLeft, Body: "pl-"},
				&Leaf{Name: "padding", Template: `p-${padding}`, ConfigKey: "padding", Shorthand: AxisAll, Body: "p-"},
			}},
			&Group{Name: "Margin", Children: []Node{
				&Leaf{Name: "margin-x", Template: `mx-${margin}|-mx-${-margin}`, ConfigKey: "margin", Shorthand: AxisX, Body: "mx-"},
				&Leaf{Name: "margin-y", Template: `my-${margin}|-my-${-margin}`, ConfigKey: "margin", Shorthand: AxisY, Body: "my-"},
				&Leaf{Name: "margin-top", Template: `mt-${margin}|-mt-${-margin}`, ConfigKey: "margin", Shorthand: AxisTop, Body: "mt-"},
				&Leaf{Name: "margin-right", Template: `mr-${margin}|-mr-${-margin}`, ConfigKey: "margin", Shorthand: AxisRight, Body: "mr-"},
				&Leaf{Name: "margin-bottom", Template: `mb-${margin}|-mb-${-margin}`, ConfigKey: "margin", Shorthand: AxisBottom, Body: "mb-"},
				&Leaf{Name: "margin-left", Template: `ml-${margin}|-ml-${-margin}`, ConfigKey: "margin", Shorthand: AxisLeft, Body: "ml-"},
				&Leaf{Name: "margin", Template: `m-${margin}|-m-${-margin}`, ConfigKey: "margin", Shorthand: AxisAll, Body: "m-"},
			}},
		}},

		&Group{Name: "Sizing", Children: []Node{
			&Leaf{Name: "min-width", Template: `min-w-${minWidth}`, ConfigKey: "minWidth", Body: "min-w-"},
			&Leaf{Name: "max-width", Template: `max-w-${maxWidth}`, ConfigKey: "maxWidth", Body: "max-w-"},
			&Leaf{Name: "min-height", Template: `min-h-${minHeight}`, ConfigKey: "minHeight", Body: "min-h-"},
			&Leaf{Name: "max-height", Template: `max-h-${maxHeight}`, ConfigKey: "maxHeight", Body: "max-h-"},
			&Leaf{Name: "width", Template: `w-${width}`, ConfigKey: "width", Body: "w-"},
			&Leaf{Name: "height", Template: `h-${height}`, ConfigKey: "height", Body: "h-"},
			&Leaf{Name: "size", Template: `size-${size}`, ConfigKey: "size", Body: "size-"},
		}},

		&Group{Name: "Typography", Children: []Node{
			&Leaf{Name: "line-clamp", Template: `line-clamp-${lineClamp}`, ConfigKey: "lineClamp", Body: "line-clamp-"},
			&Leaf{Name: "font-weight", Template: `font-${fontWeight}`, ConfigKey: "fontWeight", Body: "font-"},
			&Leaf{Name: "text-align", Template: `text-(?P<value>left|center|right|justify|start|end)`, Body: "text-"},
			&Leaf{Name: "font-size", Template: `text-${fontSize}`, ConfigKey: "fontSize", Body: "text-"},
			&Leaf{Name: "text-color", Template: `text-${textColor}`, ConfigKey: "textColor", Body: "text-"},
		}},

		&Group{Name: "Backgrounds", Children: []Node{
			&Leaf{Name: "background-image-url", Template: `bg-${backgroundImageUrl}`, Body: "bg-"},
			&Leaf{Name: "gradient-from-position", Template: `from-${gradientColorStopPositions}`, ConfigKey: "gradientColorStopPositions", Body: "from-"},
			&Leaf{Name: "gradient-via-position", Template: `via-${gradientColorStopPositions}`, ConfigKey: "gradientColorStopPositions", Body: "via-"},
			&Leaf{Name: "gradient-to-position", Template: `to-${gradientColorStopPositions}`, ConfigKey: "gradientColorStopPositions", Body: "to-"},
			&Leaf{Name: "gradient-from", Template: `from-${gradientColorStops}`, ConfigKey: "gradientColorStops", Body: "from-"},
			&Leaf{Name: "gradient-via", Template: `via-${gradientColorStops}`, ConfigKey: "gradientColorStops", Body: "via-"},
			&Leaf{Name: "gradient-to", Template: `to-${gradientColorStops}`, ConfigKey: "gradientColorStops", Body: "to-"},
			&Leaf{Name: "background-color", Template: `bg-${backgroundColor}`, ConfigKey: "backgroundColor", Body: "bg-"},
		}},

		&Group{Name: "Borders", Children: []Node{
			&Group{Name: "Border Radius", Children: []Node{
				&Leaf{Name: "rounded-tl", Template: `rounded-tl-${borderRadius}`, ConfigKey: "borderRadius", Shorthand: AxisTopLeft, Body: "rounded-tl-"},
				&Leaf{Name: "rounded-tr", Template: `rounded-tr-${borderRadius}`, ConfigKey: "borderRadius", Shorthand: AxisTopRight, Body: "rounded-tr-"},
				&Leaf{Name: "rounded-bl", Template: `rounded-bl-${borderRadius}`, ConfigKey: "borderRadius", Shorthand: AxisBottomLeft, Body: "rounded-bl-"},
				&Leaf{Name: "rounded-br", Template: `rounded-br-${borderRadius}`, ConfigKey: "borderRadius", Shorthand: AxisBottomRight, Body: "rounded-br-"},
				&Leaf{Name: "rounded-t", Template: `rounded-t-${borderRadius}`, ConfigKey: "borderRadius", Shorthand: AxisTop, Body: "rounded-t-"},
				&Leaf{Name: "rounded-r", Template: `rounded-r-${borderRadius}`, ConfigKey: "borderRadius", Shorthand: AxisRight, Body: "rounded-r-"},
				&Leaf{Name: "rounded-b", Template: `rounded-b-${borderRadius}`, ConfigKey: "borderRadius", Shorthand: AxisBottom, Body: "rounded-b-"},
				&Leaf{Name: "rounded-l", Template: `rounded-l-${borderRadius}`, ConfigKey: "borderRadius", Shorthand: AxisLeft, Body: "rounded-l-"},
				&Leaf{Name: "rounded", Template: `rounded-${borderRadius}`, ConfigKey: "borderRadius", Shorthand: AxisAll, Body: "rounded-"},
			}},
			&Group{Name: "Border Width", Children: []Node{
				&Leaf{Name: "border-x", Template: `border-x-${borderWidth}`, ConfigKey: "borderWidth", Shorthand: AxisX, Body: "border-x-"},
				&Leaf{Name: "border-y", Template: `border-y-${borderWidth}`, ConfigKey: "borderWidth", Shorthand: AxisY, Body: "border-y-"},
				&Leaf{Name: "border-t", Template: `border-t-${borderWidth}`, ConfigKey: "borderWidth", Shorthand: AxisTop, Body: "border-t-"},
				&Leaf{Name: "border-r", Template: `border-r-${borderWidth}`, ConfigKey: "borderWidth", Shorthand: AxisRight, Body: "border-r-"},
				&Leaf{Name: "border-b", Template: `border-b-${borderWidth}`, ConfigKey: "borderWidth", Shorthand: AxisBottom, Body: "border-b-"},
				&Leaf{Name: "border-l", Template: `border-l-${borderWidth}`, ConfigKey: "borderWidth", Shorthand: AxisLeft, Body: "border-l-"},
				&Leaf{Name: "border-width", Template: `border-${borderWidth}`, ConfigKey: "borderWidth", Shorthand: AxisAll, Body: "border-"},
			}},
			&Group{Name: "Border Color", Children: []Node{
				&Leaf{Name: "border-color", Template: `border-${borderColor}`, ConfigKey: "borderColor", Body: "border-"},
			}},
		}},

		&Group{Name: "SVG", Children: []Node{
			&Leaf{Name: "stroke-width", Template: `stroke-${strokeWidth}`, ConfigKey: "strokeWidth", Body: "stroke-"},
			&Leaf{Name: "stroke", Template: `stroke-${stroke}`, ConfigKey: "stroke", Body: "stroke-"},
			&Leaf{Name: "fill", Template: `fill-${fill}`, ConfigKey: "fill", Body: "fill-"},
		}},

		&Group{Name: "Effects", Children: []Node{
			&Leaf{Name: "opacity", Template: `opacity-${opacity}`, ConfigKey: "opacity", Body: "opacity-"},
		}},

		&Group{Name: "Transforms", Children: []Node{
			&Leaf{Name: "rotate", Template: `rotate-${rotate}|-rotate-${-rotate}`, ConfigKey: "rotate", Body: "rotate-"},
		}},
	}
}
