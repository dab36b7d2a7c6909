package conv

import (
	"errors"
	"go/parser"
	"testing"

	"github.com/mailru/errgen/internal/pkg/egerror"
	"github.com/stretchr/testify/require"
)

func TestMangle(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    string
		wantErr error
	}{
		{name: "builtin", expr: "uint32", want: "Uint32"},
		{name: "error", expr: "error", want: "Error"},
		{name: "local type", expr: "PathError", want: "PathError"},
		{name: "unexported local type", expr: "pathError", want: "PathError"},
		{name: "qualified", expr: "os.PathError", want: "OsPathError"},
		{name: "pointer", expr: "*os.PathError", want: "PtrOsPathError"},
		{name: "paren", expr: "(*url.Error)", want: "PtrUrlError"},
		{name: "slice", expr: "[]byte", want: "SliceOfByte"},
		{name: "array", expr: "[16]byte", want: "Array16OfByte"},
		{name: "constant array len", expr: "[size]byte", want: "ArraySizeOfByte"},
		{name: "qualified array len", expr: "[sha256.Size]byte", want: "ArraySha256SizeOfByte"},
		{name: "map", expr: "map[string]*time.Time", want: "MapOfStringToPtrTimeTime"},
		{name: "slice of pointers", expr: "[]*net.OpError", want: "SliceOfPtrNetOpError"},
		{name: "chan", expr: "chan int", want: "ChanOfInt"},
		{name: "send chan", expr: "chan<- struct{}", want: "SendChanOfStruct"},
		{name: "recv chan", expr: "<-chan error", want: "RecvChanOfError"},
		{name: "empty func", expr: "func()", want: "Func"},
		{name: "func", expr: "func(a, b string) error", want: "FuncOfStringAndStringReturningError"},
		{name: "variadic func", expr: "func(...any)", want: "FuncOfVariadicOfAny"},
		{name: "empty interface", expr: "interface{}", want: "Interface"},
		{name: "interface", expr: "interface{ error; Temporary() bool }", want: "InterfaceWithErrorAndTemporaryOfFuncReturningBool"},
		{name: "empty struct", expr: "struct{}", want: "Struct"},
		{name: "inline struct", expr: "struct{ A, B int }", want: "StructWithAOfIntAndBOfInt"},
		{name: "generic", expr: "List[int]", want: "ListOfInt"},
		{name: "generic with several args", expr: "Pair[string, *os.File]", want: "PairOfStringAndPtrOsFile"},
		{name: "expression array len", expr: "[size + 1]byte", wantErr: egerror.ErrParseFieldTypeUnsupported},
		{name: "unsupported in map", expr: "map[string][n * 2]int", wantErr: egerror.ErrParseFieldTypeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parser.ParseExpr(tt.expr)
			require.NoError(t, err)

			got, err := Mangle(expr)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "Mangle() error = %v, want %v", err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestQualifiers(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []string
	}{
		{name: "builtin", expr: "uint32", want: []string{}},
		{name: "pointer", expr: "*os.PathError", want: []string{"os"}},
		{name: "map", expr: "map[url.URL]*time.Time", want: []string{"url", "time"}},
		{name: "repeated", expr: "func(os.FileMode) *os.File", want: []string{"os"}},
		{name: "inside struct", expr: "struct{ F *os.File; C chan net.Conn }", want: []string{"os", "net"}},
		{name: "array len", expr: "[sha256.Size + 1]byte", want: []string{"sha256"}},
		{name: "interface", expr: "interface{ Do(ctx context.Context) }", want: []string{"context"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parser.ParseExpr(tt.expr)
			require.NoError(t, err)
			require.Equal(t, tt.want, Qualifiers(expr))
		})
	}
}
