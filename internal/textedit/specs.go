package textedit

import (
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-mdedit/pkg/interfaces"
)

// Format names accepted by Spec and the editor command layer.
const (
	FormatBold           = "bold"
	FormatItalic         = "italic"
	FormatStrikethrough  = "strikethrough"
	FormatInlineCode     = "inline-code"
	FormatCodeBlock      = "code-block"
	FormatLink           = "link"
	FormatImage          = "image"
	FormatQuote          = "quote"
	FormatHeading1       = "heading-1"
	FormatHeading2       = "heading-2"
	FormatHeading3       = "heading-3"
	FormatHeading4       = "heading-4"
	FormatHeading5       = "heading-5"
	FormatHeading6       = "heading-6"
	FormatUnorderedList  = "unordered-list"
	FormatOrderedList    = "ordered-list"
	FormatTaskList       = "task-list"
	FormatTableSkeleton  = "table-skeleton"
	FormatHorizontalRule = "horizontal-rule"
)

const tableSkeleton = "| Column 1 | Column 2 |\n| --- | --- |\n|  |  |\n"

func staticPrefix(prefix string) func(int) string {
	return func(int) string { return prefix }
}

var specRegistry = map[string]interfaces.FormatSpec{
	FormatBold:          {Name: FormatBold, Prefix: "**", Suffix: "**"},
	FormatItalic:        {Name: FormatItalic, Prefix: "_", Suffix: "_"},
	FormatStrikethrough: {Name: FormatStrikethrough, Prefix: "~~", Suffix: "~~"},
	FormatInlineCode:    {Name: FormatInlineCode, Prefix: "`", Suffix: "`"},
	FormatCodeBlock: {
		Name:       FormatCodeBlock,
		Prefix:     "```\n",
		Suffix:     "\n```",
		BlockLevel: true,
	},
	FormatLink:  {Name: FormatLink, Prefix: "[", Suffix: "](url)"},
	FormatImage: {Name: FormatImage, Prefix: "![", Suffix: "](url)"},
	FormatQuote: {
		Name:       FormatQuote,
		Prefix:     "> ",
		Multiline:  true,
		LinePrefix: staticPrefix("> "),
	},
	FormatHeading1: {Name: FormatHeading1, Prefix: "# ", BlockLevel: true},
	FormatHeading2: {Name: FormatHeading2, Prefix: "## ", BlockLevel: true},
	FormatHeading3: {Name: FormatHeading3, Prefix: "### ", BlockLevel: true},
	FormatHeading4: {Name: FormatHeading4, Prefix: "#### ", BlockLevel: true},
	FormatHeading5: {Name: FormatHeading5, Prefix: "##### ", BlockLevel: true},
	FormatHeading6: {Name: FormatHeading6, Prefix: "###### ", BlockLevel: true},
	FormatUnorderedList: {
		Name:       FormatUnorderedList,
		Prefix:     "- ",
		Multiline:  true,
		LinePrefix: staticPrefix("- "),
	},
	FormatOrderedList: {
		Name:      FormatOrderedList,
		Prefix:    "1. ",
		Multiline: true,
		LinePrefix: func(index int) string {
			return fmt.Sprintf("%d. ", index+1)
		},
	},
	FormatTaskList: {
		Name:       FormatTaskList,
		Prefix:     "- [ ] ",
		Multiline:  true,
		LinePrefix: staticPrefix("- [ ] "),
	},
	FormatTableSkeleton: {
		Name:             FormatTableSkeleton,
		Prefix:           tableSkeleton,
		BlockLevel:       true,
		ReplaceSelection: true,
	},
	FormatHorizontalRule: {
		Name:             FormatHorizontalRule,
		Prefix:           "\n---\n",
		BlockLevel:       true,
		ReplaceSelection: true,
	},
}

// Spec returns the named format spec.
func Spec(name string) (interfaces.FormatSpec, bool) {
	spec, ok := specRegistry[name]
	return spec, ok
}

// SpecNames lists every registered format name, sorted for stable output.
func SpecNames() []string {
	names := make([]string, 0, len(specRegistry))
	for name := range specRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateSpec enforces the FormatSpec invariants: a multiline spec must
// carry a line prefix, and a replace-selection spec must not declare a
// suffix (it would be silently ignored).
func ValidateSpec(spec interfaces.FormatSpec) error {
	return validation.ValidateStruct(&spec,
		validation.Field(&spec.Multiline, validation.By(func(any) error {
			if spec.Multiline && spec.LinePrefix == nil {
				return validation.NewError(
					"mdedit.format_spec.line_prefix_required",
					"multiline format specs require a line prefix",
				)
			}
			return nil
		})),
		validation.Field(&spec.ReplaceSelection, validation.By(func(any) error {
			if spec.ReplaceSelection && spec.Suffix != "" {
				return validation.NewError(
					"mdedit.format_spec.suffix_ignored",
					"replace-selection format specs must not declare a suffix",
				)
			}
			return nil
		})),
	)
}
