// Package templates holds the canned messages gush posts on pull requests.
package templates

import (
	"math/rand/v2"
	"sort"
	"strings"
)

// Pats are the messages used to thank a pull request author
var Pats = []string{
	"Good catch @{{ author }}, thanks for the patch.",
	"Thank you @{{ author }}.",
	"Thanks @{{ author }}, nice work!",
	"Great job @{{ author }}, this is much appreciated.",
	"Merged, thanks for keeping this project healthy @{{ author }}.",
	"Well done @{{ author }}! Keep them coming.",
}

// Picker returns an index in [0, n)
type Picker func(n int) int

// RandomPicker picks uniformly at random
func RandomPicker(n int) int {
	return rand.IntN(n)
}

// Pick returns one of templates chosen by pick. A nil pick picks at random.
func Pick(templates []string, pick Picker) string {
	if len(templates) == 0 {
		return ""
	}
	if pick == nil {
		pick = RandomPicker
	}
	return templates[pick(len(templates))]
}

// Render replaces every "{{ name }}" in template with placeholders[name].
// Placeholders without a value are left untouched.
func Render(template string, placeholders map[string]string) string {
	names := make([]string, 0, len(placeholders))
	for name := range placeholders {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, "{{ "+name+" }}", placeholders[name])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
