package profile

import "testing"

func TestDetectDelimiter(t *testing.T) {
	tests := map[string]struct {
		Lines []string
		Exp   byte
	}{
		"comma": {
			[]string{"a,b,c", "1,2,3", "4,5,6"},
			',',
		},
		"semicolon": {
			[]string{"a;b;c", "1;2;3"},
			';',
		},
		"tab": {
			[]string{"a\tb\tc", "1\t2\t3"},
			'\t',
		},
		"pipe": {
			[]string{"a|b|c", "1|2|3"},
			'|',
		},
		"whitespace": {
			[]string{"a b c", "1 2 3"},
			WhitespaceDelimiter,
		},
		// Commas appear on every line but with uneven counts; the
		// steady semicolon count wins on variance.
		"consistency": {
			[]string{"a,b;c;d", "x,y,z;2;3", "p;q,r;t"},
			';',
		},
		"single-column": {
			[]string{"a", "1", "2"},
			',',
		},
		"empty-sample": {
			nil,
			',',
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := DetectDelimiter(test.Lines, 0); got != test.Exp {
				t.Errorf("expected %q, got %q", test.Exp, got)
			}
		})
	}
}

func TestDetectDelimiterForced(t *testing.T) {
	if got := DetectDelimiter([]string{"a,b", "1,2"}, ';'); got != ';' {
		t.Errorf("expected forced ';', got %q", got)
	}
}

// Comma wins ties with later candidates by priority order.
func TestDetectDelimiterTieBreak(t *testing.T) {
	lines := []string{"a,b|c", "1,2|3"}

	if got := DetectDelimiter(lines, 0); got != ',' {
		t.Errorf("expected ',', got %q", got)
	}
}
