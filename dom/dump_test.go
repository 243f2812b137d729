package dom

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/heathj/htmltags/attribute"
	"github.com/heathj/htmltags/element"
)

func TestDumpNodes(t *testing.T) {
	tests := []struct {
		name     string
		in       element.Node
		expected string
	}{
		{
			name: "attributes sorted",
			in: element.Img{
				Src:    "a.png",
				Alt:    "A",
				Global: attribute.Global{ID: "logo"},
			},
			expected: `| <img>
|   alt="A"
|   id="logo"
|   src="a.png"`,
		},
		{
			name: "siblings and comment",
			in: element.Group(
				element.Comment("c"),
				element.Hr{},
				element.Text("t"),
			),
			expected: `| <!-- c -->
| <hr>
| "t"`,
		},
		{
			name: "table",
			in: element.Table{Contents: element.Contents{Content: element.Wrap(
				element.Tbody{Contents: element.Contents{Content: element.Wrap(
					element.Tr{Contents: element.Contents{Content: element.Wrap(
						element.Td{Cell: element.Cell{Colspan: attribute.Ptr(2)}},
					)}},
				)}},
			)}},
			expected: `| <table>
|   <tbody>
|     <tr>
|       <td>
|         colspan="2"`,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			nodes, err := quietBuilder().Build(test.in)
			require.NoError(t, err)
			s := DumpNodes(nodes)
			if s != test.expected {
				t.Errorf("Wrong tree. Expected: \n\n%s\nGot: \n\n%s", test.expected, s)
			}
		})
	}
}

func TestDumpForeignNamespace(t *testing.T) {
	svg := &html.Node{Type: html.ElementNode, Data: "svg", Namespace: "svg"}
	svg.Attr = []html.Attribute{{Namespace: "xlink", Key: "href", Val: "#a"}}
	expected := `| <svg svg>
|   xlink href="#a"`
	require.Equal(t, expected, Dump(svg))
}
