package emitter

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderConcreteScenario(t *testing.T) {
	t.Parallel()

	sep := string(os.PathSeparator)
	doc := Render("."+sep+"food-101", []string{"pizza", "sushi"})

	want := "\n" +
		"train: ." + sep + "food-101" + sep + "images" + sep + "train\n" +
		"val: ." + sep + "food-101" + sep + "images" + sep + "test\n" +
		"nc: 2\n" +
		"names: ['pizza', 'sushi']\n"
	assert.Equal(t, want, doc)
}

func TestRenderEmptyClasses(t *testing.T) {
	t.Parallel()

	doc := Render("data", nil)

	assert.Contains(t, doc, "\nnc: 0\n")
	assert.Contains(t, doc, "\nnames: []\n")
}

func TestFormatNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    string
		classes []string
	}{
		{name: "nil", classes: nil, want: "[]"},
		{name: "single", classes: []string{"pizza"}, want: "['pizza']"},
		{name: "ordered", classes: []string{"b", "a", "b"}, want: "['b', 'a', 'b']"},
		{name: "not escaped", classes: []string{"it's"}, want: "['it's']"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatNames(tt.classes))
		})
	}
}

func TestJoinPath(t *testing.T) {
	t.Parallel()

	sep := string(os.PathSeparator)

	tests := []struct {
		name string
		base string
		want string
		elem []string
	}{
		{name: "keeps dot prefix", base: "." + sep + "data", elem: []string{"images"}, want: "." + sep + "data" + sep + "images"},
		{name: "trailing separator", base: "data" + sep, elem: []string{"images", "train"}, want: "data" + sep + "images" + sep + "train"},
		{name: "empty base", base: "", elem: []string{"images", "test"}, want: "images" + sep + "test"},
		{name: "no elements", base: "data", elem: nil, want: "data"},
		{name: "skips empty element", base: "data", elem: []string{"", "images"}, want: "data" + sep + "images"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, JoinPath(tt.base, tt.elem...))
		})
	}
}
