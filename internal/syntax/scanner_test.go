package syntax

import (
	"strings"
	"testing"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		{"ident", "foo", []Token{_Name, _EOF}, []string{"foo", ""}},
		{"ident_underscore", "_bar", []Token{_Name, _EOF}, []string{"_bar", ""}},
		{"ident_mixed", "foo123", []Token{_Name, _EOF}, []string{"foo123", ""}},
		{"ident_caps", "FooBar", []Token{_Name, _EOF}, []string{"FooBar", ""}},

		// Primitive type keywords are reserved words, not identifiers.
		{"type_i32", "i32", []Token{_I32, _EOF}, []string{"i32", ""}},
		{"type_any", "any", []Token{_Any, _EOF}, []string{"any", ""}},

		// Non-keyword names that happen to look like other languages' keywords.
		{"not_keyword_int", "int", []Token{_Name, _EOF}, []string{"int", ""}},
		{"not_keyword_println", "println", []Token{_Name, _EOF}, []string{"println", ""}},

		{"int_dec", "123", []Token{_Number, _EOF}, []string{"123", ""}},
		{"int_zero", "0", []Token{_Number, _EOF}, []string{"0", ""}},
		{"int_underscore", "1_000_000", []Token{_Number, _EOF}, []string{"1000000", ""}},

		{"float_simple", "3.14", []Token{_Number, _EOF}, []string{"3.14", ""}},
		{"float_no_frac_digits_is_range", "3..5", []Token{_Number, _DotDot, _Number, _EOF}, []string{"3", "..", "5", ""}},

		{"string_simple", `"hello"`, []Token{_String, _EOF}, []string{"hello", ""}},
		{"string_empty", `""`, []Token{_String, _EOF}, []string{"", ""}},
		{"string_escape_n", `"a\nb"`, []Token{_String, _EOF}, []string{"a\nb", ""}},
		{"string_escape_t", `"a\tb"`, []Token{_String, _EOF}, []string{"a\tb", ""}},
		{"string_escape_r", `"a\rb"`, []Token{_String, _EOF}, []string{"a\rb", ""}},
		{"string_escape_backslash", `"a\\b"`, []Token{_String, _EOF}, []string{"a\\b", ""}},
		{"string_escape_quote", `"a\"b"`, []Token{_String, _EOF}, []string{"a\"b", ""}},
		{"string_escape_zero", `"a\0b"`, []Token{_String, _EOF}, []string{"a\x00b", ""}},

		{"char_simple", `'x'`, []Token{_Char, _EOF}, []string{"x", ""}},
		{"char_escape_n", `'\n'`, []Token{_Char, _EOF}, []string{"\n", ""}},

		{"op_add", "+", []Token{_Add, _EOF}, []string{"+", ""}},
		{"op_sub", "-", []Token{_Sub, _EOF}, []string{"-", ""}},
		{"op_mul", "*", []Token{_Mul, _EOF}, []string{"*", ""}},
		{"op_div", "/", []Token{_Div, _EOF}, []string{"/", ""}},
		{"op_rem", "%", []Token{_Rem, _EOF}, []string{"%", ""}},
		{"op_pow", "**", []Token{_Pow, _EOF}, []string{"**", ""}},
		{"op_and", "&", []Token{_And, _EOF}, []string{"&", ""}},
		{"op_not", "!", []Token{_Not, _EOF}, []string{"!", ""}},
		{"op_lss", "<", []Token{_Lss, _EOF}, []string{"<", ""}},
		{"op_gtr", ">", []Token{_Gtr, _EOF}, []string{">", ""}},
		{"op_assign", "=", []Token{_Assign, _EOF}, []string{"=", ""}},
		{"op_colon", ":", []Token{_Colon, _EOF}, []string{":", ""}},
		{"op_question", "?", []Token{_Question, _EOF}, []string{"?", ""}},

		{"op_andand", "&&", []Token{_AndAnd, _EOF}, []string{"&&", ""}},
		{"op_oror", "||", []Token{_OrOr, _EOF}, []string{"||", ""}},
		{"op_eql", "==", []Token{_Eql, _EOF}, []string{"==", ""}},
		{"op_neq", "!=", []Token{_Neq, _EOF}, []string{"!=", ""}},
		{"op_leq", "<=", []Token{_Leq, _EOF}, []string{"<=", ""}},
		{"op_geq", ">=", []Token{_Geq, _EOF}, []string{">=", ""}},
		{"op_dcolon", "::", []Token{_Dcolon, _EOF}, []string{"::", ""}},
		{"op_dotdot", "..", []Token{_DotDot, _EOF}, []string{"..", ""}},
		{"op_ellipsis", "...", []Token{_Ellipsis, _EOF}, []string{"...", ""}},
		{"op_arrow", "->", []Token{_Arrow, _EOF}, []string{"->", ""}},
		{"op_addassign", "+=", []Token{_AddAssign, _EOF}, []string{"+=", ""}},
		{"op_powassign", "**=", []Token{_PowAssign, _EOF}, []string{"**=", ""}},

		{"delim_lparen", "(", []Token{_Lparen, _EOF}, []string{"(", ""}},
		{"delim_rparen", ")", []Token{_Rparen, _EOF}, []string{")", ""}},
		{"delim_lbrack", "[", []Token{_Lbrack, _EOF}, []string{"[", ""}},
		{"delim_rbrack", "]", []Token{_Rbrack, _EOF}, []string{"]", ""}},
		{"delim_lbrace", "{", []Token{_Lbrace, _EOF}, []string{"{", ""}},
		{"delim_rbrace", "}", []Token{_Rbrace, _EOF}, []string{"}", ""}},
		{"delim_comma", ",", []Token{_Comma, _EOF}, []string{",", ""}},
		{"delim_semi", ";", []Token{_Semi, _EOF}, []string{";", ""}},
		{"delim_dot", ".", []Token{_Dot, _EOF}, []string{".", ""}},

		{"kw_break", "break", []Token{_Break, _EOF}, []string{"break", ""}},
		{"kw_continue", "continue", []Token{_Continue, _EOF}, []string{"continue", ""}},
		{"kw_else", "else", []Token{_Else, _EOF}, []string{"else", ""}},
		{"kw_for", "for", []Token{_For, _EOF}, []string{"for", ""}},
		{"kw_func", "func", []Token{_Func, _EOF}, []string{"func", ""}},
		{"kw_if", "if", []Token{_If, _EOF}, []string{"if", ""}},
		{"kw_import", "import", []Token{_Import, _EOF}, []string{"import", ""}},
		{"kw_return", "return", []Token{_Return, _EOF}, []string{"return", ""}},
		{"kw_struct", "struct", []Token{_Struct, _EOF}, []string{"struct", ""}},
		{"kw_let", "let", []Token{_Let, _EOF}, []string{"let", ""}},
		{"kw_self", "self", []Token{_Self, _EOF}, []string{"self", ""}},

		{"expr_add", "1 + 2", []Token{_Number, _Add, _Number, _EOF}, []string{"1", "+", "2", ""}},
		{"expr_call", "foo()", []Token{_Name, _Lparen, _Rparen, _EOF}, []string{"foo", "(", ")", ""}},
		{"expr_index", "arr[0]", []Token{_Name, _Lbrack, _Number, _Rbrack, _EOF}, []string{"arr", "[", "0", "]", ""}},
		{"expr_member", "p.x", []Token{_Name, _Dot, _Name, _EOF}, []string{"p", ".", "x", ""}},
		{"expr_scope", "A::B", []Token{_Name, _Dcolon, _Name, _EOF}, []string{"A", "::", "B", ""}},
		{"expr_compare", "a == b", []Token{_Name, _Eql, _Name, _EOF}, []string{"a", "==", "b", ""}},
		{"expr_logical", "a && b || c", []Token{_Name, _AndAnd, _Name, _OrOr, _Name, _EOF}, []string{"a", "&&", "b", "||", "c", ""}},

		// No ASI: newline is ordinary whitespace, statements terminate on
		// an optional ';' consumed by the parser, not here.
		{"newline_no_semi", "a\nb", []Token{_Name, _Name, _EOF}, []string{"a", "b", ""}},

		{"comment_line", "a // comment\nb", []Token{_Name, _Name, _EOF}, []string{"a", "b", ""}},
		{"comment_line_eof", "a // comment", []Token{_Name, _EOF}, []string{"a", ""}},
		{"comment_block", "a /* block */ b", []Token{_Name, _Name, _EOF}, []string{"a", "b", ""}},
		{"comment_block_multiline", "a /* line1\nline2 */ b", []Token{_Name, _Name, _EOF}, []string{"a", "b", ""}},

		{"whitespace_spaces", "  a  ", []Token{_Name, _EOF}, []string{"a", ""}},
		{"whitespace_tabs", "\ta\t", []Token{_Name, _EOF}, []string{"a", ""}},
		{"whitespace_mixed", " \t a \t\n ", []Token{_Name, _EOF}, []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner("test", []byte(tt.src), nil)
			for i, wantTok := range tt.tokens {
				s.Next()
				if s.Token() != wantTok {
					t.Errorf("token %d: got %v, want %v", i, s.Token(), wantTok)
				}
				if tt.lits[i] != "" && s.Literal() != tt.lits[i] {
					t.Errorf("literal %d: got %q, want %q", i, s.Literal(), tt.lits[i])
				}
			}
		})
	}
}

func TestScanLitKind(t *testing.T) {
	tests := []struct {
		src  string
		kind LitKind
	}{
		{"123", IntLit},
		{"1_000", IntLit},
		{"3.14", FloatLit},
		{`"hello"`, StringLit},
		{`'x'`, CharLit},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := NewScanner("test", []byte(tt.src), nil)
			s.Next()
			if s.LitKind() != tt.kind {
				t.Errorf("LitKind = %v, want %v", s.LitKind(), tt.kind)
			}
		})
	}
}

func TestScanRaw(t *testing.T) {
	tests := []struct {
		src     string
		wantLit string
		wantRaw string
	}{
		{"1_000", "1000", "1_000"},
		{`"a\nb"`, "a\nb", `"a\nb"`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := NewScanner("test", []byte(tt.src), nil)
			s.Next()
			if s.Literal() != tt.wantLit {
				t.Errorf("Literal() = %q, want %q", s.Literal(), tt.wantLit)
			}
			if s.Raw() != tt.wantRaw {
				t.Errorf("Raw() = %q, want %q", s.Raw(), tt.wantRaw)
			}
		})
	}
}

// No ASI anywhere: a newline between tokens never introduces a
// semicolon. Statement-terminating ';' is always optional and is the
// parser's concern (4.2), not the scanner's.
func TestNoASI(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Token
	}{
		{"ident_newline", "foo\nbar", []Token{_Name, _Name, _EOF}},
		{"number_newline", "123\n456", []Token{_Number, _Number, _EOF}},
		{"return_newline", "return\n1", []Token{_Return, _Number, _EOF}},
		{"rparen_newline", "foo()\nbar", []Token{_Name, _Lparen, _Rparen, _Name, _EOF}},
		{"rbrace_newline", "{\n}\nfoo", []Token{_Lbrace, _Rbrace, _Name, _EOF}},
		{"multiple_newlines", "foo\n\n\nbar", []Token{_Name, _Name, _EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner("test", []byte(tt.src), nil)
			for i, want := range tt.want {
				s.Next()
				if s.Token() != want {
					t.Errorf("token %d: got %v, want %v", i, s.Token(), want)
				}
			}
		})
	}
}

func TestPosition(t *testing.T) {
	src := "func foo() {\n    let x = 123\n}"

	expected := []struct {
		tok  Token
		line uint32
		col  uint32
	}{
		{_Func, 1, 1},
		{_Name, 1, 6},    // foo
		{_Lparen, 1, 9},  // (
		{_Rparen, 1, 10}, // )
		{_Lbrace, 1, 12}, // {
		{_Let, 2, 5},     // let
		{_Name, 2, 9},    // x
		{_Assign, 2, 11}, // =
		{_Number, 2, 13}, // 123
		{_Rbrace, 3, 1},  // }
	}

	s := NewScanner("test.sn", []byte(src), nil)
	for i, exp := range expected {
		s.Next()
		pos := s.Pos()
		if s.Token() != exp.tok {
			t.Errorf("token %d: got %v, want %v", i, s.Token(), exp.tok)
		}
		if pos.Line() != exp.line || pos.Col() != exp.col {
			t.Errorf("token %d (%v): pos = %d:%d, want %d:%d",
				i, s.Token(), pos.Line(), pos.Col(), exp.line, exp.col)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"unterminated_string", `"hello`, "string literal not terminated"},
		{"unterminated_char", `'x`, "character literal not terminated"},
		{"empty_char", `''`, "empty character literal"},
		{"multi_char", `'xy'`, "must contain exactly one character"},
		{"bad_escape", `"\q"`, "unknown escape sequence"},
		{"bad_underscore", "1_", "append 0"},
		{"unterminated_block_comment", "/* never closed", "block comment not terminated"},
		{"bad_char_at", "@", "unexpected character"},
		{"bad_char_hash", "#", "unexpected character"},
		{"bad_char_pipe", "|", "unknown token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errMsg string
			errh := func(line, col uint32, msg string) {
				if errMsg == "" {
					errMsg = msg
				}
			}
			s := NewScanner("test", []byte(tt.src), errh)
			for i := 0; i < 1000; i++ {
				s.Next()
				if s.Token().IsEOF() {
					break
				}
			}
			if errMsg == "" {
				t.Errorf("expected error containing %q, got no error", tt.wantErr)
			} else if !strings.Contains(errMsg, tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, errMsg)
			}
		})
	}
}

func TestCompleteProgram(t *testing.T) {
	src := `struct Point {
    x: i32,
    y: f64,
}

func add(a: i32, b: i32) -> i32 {
    return a + b;
}

func main() -> void {
    let p: Point;
    p.x = 10;
    p.y = 3.14;

    if p.x > 0 {
        println(p.x);
    }

    let i: i32 = 0;
    while i < 10 {
        i = i + 1;
    }

    let result = add(1, 2);
}
`

	s := NewScanner("test.sn", []byte(src), nil)
	tokenCount := 0
	for {
		s.Next()
		tokenCount++
		if s.Token().IsEOF() {
			break
		}
		if tokenCount > 1000 {
			t.Fatal("too many tokens, possible infinite loop")
		}
	}

	if tokenCount < 50 {
		t.Errorf("expected at least 50 tokens, got %d", tokenCount)
	}
}

func TestCommentsInCode(t *testing.T) {
	src := `// leading comment
func foo() { // inline comment
    let x = 1 // assign
    /* standalone
       block comment */
    return x // return
}
`

	expected := []Token{
		_Func, _Name, _Lparen, _Rparen, _Lbrace,
		_Let, _Name, _Assign, _Number,
		_Return, _Name,
		_Rbrace,
	}

	s := NewScanner("test.sn", []byte(src), nil)
	for i, wantTok := range expected {
		s.Next()
		if s.Token() != wantTok {
			t.Errorf("token %d: got %v, want %v", i, s.Token(), wantTok)
		}
	}
}

func FuzzScanner(f *testing.F) {
	seeds := []string{
		"func foo() -> i32 { return 123; }",
		`let s: str = "hello\nworld";`,
		"let x: i32 = 1_000 + 2;",
		"if a && b || c { }",
		"while i < 10 { i = i + 1; }",
		"struct Point { x: i32, y: i32 }",
		"p.x = 10;",
		"arr[0] = 1;",
		"// comment\nfoo",
		"/* block */ foo",
		"a < b<T>(c)",
		"for i in 0..10 { }",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		errh := func(line, col uint32, msg string) {}
		s := NewScanner("fuzz", []byte(src), errh)
		for i := 0; i < 10000; i++ {
			s.Next()
			if s.Token().IsEOF() {
				break
			}
		}
	})
}
