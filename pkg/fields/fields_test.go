package fields

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-formhelpers/pkg/attrs"
	"github.com/goliatone/go-formhelpers/pkg/escape"
)

func TestLabelEmptyTextRendersNothing(t *testing.T) {
	if got := Label(LabelConfig{Text: "", Required: true, For: "x"}); got != "" {
		t.Fatalf("expected no output, got %q", got)
	}
}

func TestLabelRequiredMarker(t *testing.T) {
	got := Label(LabelConfig{Text: "Name", Required: true})
	want := `<label>Name <span class="required">*</span></label>`
	if got != want {
		t.Fatalf("Label() = %q, want %q", got, want)
	}
}

func TestLabelForAndAttrs(t *testing.T) {
	got := Label(LabelConfig{
		Text:  "Tom & Jerry",
		For:   "pair",
		Attrs: attrs.FromStrings("class", "field-label"),
	})
	want := `<label class="field-label" for="pair">Tom &amp; Jerry</label>`
	if got != want {
		t.Fatalf("Label() = %q, want %q", got, want)
	}
}

func TestLabelDoesNotMutateCallerAttrs(t *testing.T) {
	shared := attrs.FromStrings("class", "x")
	_ = Label(LabelConfig{Text: "A", For: "a", Attrs: shared})
	if shared.Has("for") {
		t.Fatalf("caller attrs were mutated: %v", shared.Names())
	}
}

func TestInputDefaults(t *testing.T) {
	got := Input(InputConfig{})
	if got != `<input type="text" value>` {
		t.Fatalf("Input() = %q", got)
	}
}

func TestInputEscapesValue(t *testing.T) {
	got := Input(InputConfig{Type: "text", Value: "O'Brien"})
	if strings.Contains(got, "O'Brien") {
		t.Fatalf("expected apostrophe to be escaped, got %q", got)
	}
	if !strings.Contains(got, `value="O&#39;Brien"`) {
		t.Fatalf("expected escaped value attribute, got %q", got)
	}
}

func TestInputWithLabelBindsID(t *testing.T) {
	got := Input(InputConfig{
		Type:     "email",
		Label:    "Email",
		Required: true,
		Attrs:    attrs.FromStrings("id", "email", "name", "email"),
	})
	want := `<label for="email">Email <span class="required">*</span></label>` +
		`<input id="email" name="email" type="email" value required>`
	if got != want {
		t.Fatalf("Input() = %q, want %q", got, want)
	}
	if strings.Contains(got, "</input>") {
		t.Fatalf("input must be a void element, got %q", got)
	}
}

func TestInputLabelWithoutIDOmitsFor(t *testing.T) {
	got := Input(InputConfig{Label: "Search", Value: "go"})
	if strings.Contains(got, "for=") {
		t.Fatalf("expected no for attribute, got %q", got)
	}
	if !strings.HasPrefix(got, "<label>Search</label><input") {
		t.Fatalf("expected label before input, got %q", got)
	}
}

func TestInputCallerTypeIsOverridden(t *testing.T) {
	got := Input(InputConfig{Type: "number", Attrs: attrs.FromStrings("type", "text", "min", "1")})
	if got != `<input type="number" min="1" value>` {
		t.Fatalf("Input() = %q", got)
	}
}

func TestCheckboxStates(t *testing.T) {
	cases := []struct {
		name string
		cfg  CheckboxConfig
		want string
	}{
		{
			name: "bare",
			cfg:  CheckboxConfig{},
			want: `<input type="checkbox" value="1">`,
		},
		{
			name: "checked",
			cfg:  CheckboxConfig{Checked: true, Value: "yes", Attrs: attrs.FromStrings("name", "agree")},
			want: `<input name="agree" type="checkbox" value="yes" checked>`,
		},
		{
			name: "wrapped in label",
			cfg: CheckboxConfig{
				Label:      "I <agree>",
				Required:   true,
				LabelAttrs: attrs.FromStrings("class", "check"),
			},
			want: `<label class="check"><input type="checkbox" value="1" required> I &lt;agree&gt; <span class="required">*</span></label>`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Checkbox(tc.cfg); got != tc.want {
				t.Fatalf("Checkbox() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSelectMarksSelectedOption(t *testing.T) {
	got := Select(SelectConfig{
		Options: Options{{Value: "a", Label: "Apple"}, {Value: "b", Label: "Banana"}},
		Value:   "b",
	})
	want := `<select><option value="a">Apple</option><option value="b" selected="selected">Banana</option></select>`
	if got != want {
		t.Fatalf("Select() = %q, want %q", got, want)
	}
	if n := strings.Count(got, "selected="); n != 1 {
		t.Fatalf("expected exactly one selected option, got %d", n)
	}
}

func TestSelectEmptyRendersNothing(t *testing.T) {
	if got := Select(SelectConfig{Options: Options{}, NoneOption: ""}); got != "" {
		t.Fatalf("expected no output, got %q", got)
	}
}

func TestSelectNoneOption(t *testing.T) {
	got := Select(SelectConfig{
		NoneOption: "— Choose —",
		Options:    OptionsFromValues("x"),
		Value:      "x",
		Required:   true,
		Label:      "Pick",
		Attrs:      attrs.FromStrings("id", "pick", "name", "pick"),
	})
	want := `<label for="pick">Pick <span class="required">*</span></label>` +
		`<select id="pick" name="pick" required>` +
		`<option value="">— Choose —</option>` +
		`<option value="x" selected="selected">x</option>` +
		`</select>`
	if got != want {
		t.Fatalf("Select() = %q, want %q", got, want)
	}
}

func TestSelectOnlyNoneOption(t *testing.T) {
	got := Select(SelectConfig{NoneOption: "None", Value: "missing"})
	if got != `<select><option value="">None</option></select>` {
		t.Fatalf("Select() = %q", got)
	}
}

func TestSelectLooseEquality(t *testing.T) {
	got := Select(SelectConfig{Options: OptionsFromMap(map[string]string{"1": "One", "2": "Two"}), Value: "1.0"})
	if !strings.Contains(got, `<option value="1" selected="selected">One</option>`) {
		t.Fatalf("expected numeric match, got %q", got)
	}
	if strings.Contains(got, `<option value="2" selected`) {
		t.Fatalf("unexpected selection, got %q", got)
	}
}

func TestLooseEqualOnlyMatchesDecimalLiterals(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"1", "1", true},
		{"1", "1.0", true},
		{"-2.50", "-2.5", true},
		{"abc", "abc", true},
		{"inf", "Infinity", false},
		{"0x10", "16", false},
		{" 1", "1", false},
		{"1e2", "100", false},
		{"1", "2", false},
		{".", "0", false},
	}
	for _, tc := range cases {
		if got := looseEqual(tc.a, tc.b); got != tc.want {
			t.Fatalf("looseEqual(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSelectEscapesOptions(t *testing.T) {
	got := Select(SelectConfig{Options: Options{{Value: `"x"`, Label: "<b>"}}})
	if !strings.Contains(got, `<option value="&#34;x&#34;">&lt;b&gt;</option>`) {
		t.Fatalf("expected escaped option, got %q", got)
	}
}

func TestRendererOptions(t *testing.T) {
	r := New(
		WithRequiredMarker(`<abbr title="required">*</abbr>`),
		WithEscaper(escape.NewSanitizing(nil)),
	)
	got := r.Label(LabelConfig{Text: "Accept <em>terms</em><script>x</script>", Required: true})
	want := `<label>Accept <em>terms</em> <abbr title="required">*</abbr></label>`
	if got != want {
		t.Fatalf("Label() = %q, want %q", got, want)
	}
}

func TestRendererEmptyMarker(t *testing.T) {
	r := New(WithRequiredMarker(""))
	if got := r.Label(LabelConfig{Text: "A", Required: true}); got != "<label>A</label>" {
		t.Fatalf("Label() = %q", got)
	}
}

func TestEmit(t *testing.T) {
	var buf bytes.Buffer
	if err := Emit(&buf, Label(LabelConfig{})); err != nil {
		t.Fatalf("emit empty: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", buf.String())
	}
	if err := Emit(&buf, Input(InputConfig{Value: "v"})); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if buf.String() != `<input type="text" value="v">` {
		t.Fatalf("unexpected emitted markup %q", buf.String())
	}
}

func TestRenderersAreSafeForConcurrentUse(t *testing.T) {
	shared := attrs.FromStrings("id", "c")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Input(InputConfig{Label: "C", Attrs: shared}); !strings.Contains(got, `for="c"`) {
				t.Errorf("unexpected markup %q", got)
			}
		}()
	}
	wg.Wait()
}
