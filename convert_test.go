package gedxml

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/gedcom-xml/encode"
	"github.com/signadot/gedcom-xml/ir"
	"github.com/signadot/gedcom-xml/parse"
	"github.com/signadot/gedcom-xml/query"
	"github.com/signadot/gedcom-xml/token"
)

type convertTest struct {
	name string
	in   string
	out  string
}

var convertTests = []convertTest{
	{
		name: "two individuals",
		in: `0 @I1@ INDI
1 NAME John /Doe/
1 SEX M
0 @I2@ INDI
1 NAME Jane /Doe/
`,
		out: `<?xml version="1.0" encoding="UTF-8"?>
<gedcom>
<indi id="@I1@">
<name>John /Doe/</name>
<sex>M</sex>
</indi>
<indi id="@I2@">
<name>Jane /Doe/</name>
</indi>
</gedcom>
`,
	},
	{
		name: "header family and trailer",
		in: `0 HEAD
1 SOUR PAF
2 VERS 2.1
1 CHAR ANSEL

0 @F1@ FAM
1 HUSB @I1@
1 MARR
2 DATE 1 JAN 1900
2 PLAC St. Mary's & St. John's
0 TRLR
`,
		out: `<?xml version="1.0" encoding="UTF-8"?>
<gedcom>
<head>
<sour value="PAF">
<vers>2.1</vers>
</sour>
<char>ANSEL</char>
</head>
<fam id="@F1@">
<husb>@I1@</husb>
<marr>
<date>1 JAN 1900</date>
<plac>St. Mary&apos;s &amp; St. John&apos;s</plac>
</marr>
</fam>
<trlr/>
</gedcom>
`,
	},
}

func TestConvert(t *testing.T) {
	for _, ct := range convertTests {
		t.Run(ct.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Convert(strings.NewReader(ct.in), &buf); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(ct.out, buf.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertMalformed(t *testing.T) {
	for _, in := range []string{"", "X HEAD", "1 NAME John", "0 HEAD\n1"} {
		var buf bytes.Buffer
		err := Convert(strings.NewReader(in), &buf)
		if !errors.Is(err, ir.ErrMalformedRecord) {
			t.Errorf("%q: got %v", in, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%q: wrote %q", in, buf.String())
		}
	}
}

func TestConvertErrorLine(t *testing.T) {
	tests := []struct {
		in   string
		line int
	}{
		{"0 HEAD\n1 CHAR x\nx BAD\n", 3},
		{"0 HEAD\n\n\n1 CHAR x\nx BAD\n", 5},
		{"\n  \n1 NAME John\n", 3},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		err := Convert(strings.NewReader(tt.in), &buf)
		var re *token.RecordErr
		if !errors.As(err, &re) {
			t.Fatalf("%q: got %v, want a record error", tt.in, err)
		}
		if re.Line != tt.line {
			t.Errorf("%q: error at line %d, want %d", tt.in, re.Line, tt.line)
		}
	}
}

func TestConvertOptions(t *testing.T) {
	lines := []string{"0 @I1@ INDI", "1 NAME A", "0 @N1@", "1 CONC x", "0 TRLR"}
	flt, err := query.Compile(`kind == "Identifier"`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ConvertLines(lines,
		ConvertFilter(flt),
		ConvertEncode(encode.EncodeIndent(1)))
	if err != nil {
		t.Fatal(err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>
<gedcom>
 <indi id="@I1@">
  <name>A</name>
 </indi>
 <conc>x</conc>
</gedcom>
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := ConvertLines(lines, ConvertParse(parse.ParseStrict(true))); !errors.Is(err, parse.ErrUntypedIdentifier) {
		t.Errorf("strict: got %v", err)
	}
}
