package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mailru/errgen/internal/pkg/ds"
	"github.com/mailru/errgen/internal/pkg/parser"
	"github.com/mailru/errgen/internal/pkg/testutil"
)

func TestParse(t *testing.T) {
	tempDirs := testutil.InitTmps()
	defer tempDirs.Defer()

	textTestPkg := `package declaration

import "os"

// MyError is a test family
type MyError struct {
	NotFound struct{ ID uint32 }
	Mismatch struct {
		Expected uint32
		Actual   uint32
	} ` + "`" + `msg:"size mismatch"` + "`" + `
	IO struct{ Err *os.PathError }
}
`

	srcRoot, err := tempDirs.AddTempDir()
	if err != nil {
		t.Errorf("can't initialize directory: %s", err)
		return
	}

	src := filepath.Join(srcRoot, "errors/declaration")

	if err = os.MkdirAll(src, 0755); err != nil {
		t.Errorf("prepare test files error: %s", err)
		return
	}

	if err = os.WriteFile(filepath.Join(src, "foo.go"), []byte(textTestPkg), 0644); err != nil {
		t.Errorf("prepare test files error: %s", err)
		return
	}

	wantImports := ds.NewImportPackage()
	wantImports.Imports = []ds.ImportDeclaration{{Path: "os"}}
	wantImports.ImportMap = map[string]int{"os": 0}
	wantImports.ImportPkgMap = map[string]int{"os": 0}

	type args struct {
		srcFileName string
		ep          *ds.ErrorPackage
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
		want    *ds.ErrorPackage
	}{
		{
			name: "simple decl",
			args: args{
				srcFileName: filepath.Join(src, "foo.go"),
				ep:          ds.NewErrorPackage(),
			},
			wantErr: false,
			want: &ds.ErrorPackage{
				Declarations: []ds.TypeDeclaration{
					{
						Name: "MyError",
						Doc:  []string{"// MyError is a test family"},
						Variants: []ds.VariantDeclaration{
							{
								Name:   "NotFound",
								Fields: []ds.PayloadField{{Name: "ID", Type: "uint32", Mangle: "Uint32", Qualifiers: []string{}}},
							},
							{
								Name: "Mismatch",
								Fields: []ds.PayloadField{
									{Name: "Expected", Type: "uint32", Qualifiers: []string{}},
									{Name: "Actual", Type: "uint32", Qualifiers: []string{}},
								},
								Message:    "size mismatch",
								HasMessage: true,
							},
							{
								Name:   "IO",
								Fields: []ds.PayloadField{{Name: "Err", Type: "*os.PathError", Mangle: "PtrOsPathError", Qualifiers: []string{"os"}}},
							},
						},
						VariantMap: map[string]int{"NotFound": 0, "Mismatch": 1, "IO": 2},
					},
				},
				DeclMap:       map[string]int{"MyError": 0},
				ImportPackage: wantImports,
			},
		},
		{
			name: "file not exists",
			args: args{
				srcFileName: filepath.Join(src, "bar.go"),
				ep:          ds.NewErrorPackage(),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := parser.Parse(tt.args.srcFileName, tt.args.ep); (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.want == nil {
				return
			}

			if diff := cmp.Diff(tt.want, tt.args.ep); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_testdata(t *testing.T) {
	ep := ds.NewErrorPackage()

	if err := parser.Parse(filepath.Join("testdata", "declaration", "storage.go"), ep); err != nil {
		t.Fatalf("Parse() error = %s", err)
	}

	type variantShape struct {
		Name       string
		Fields     []string
		Message    string
		HasMessage bool
	}

	got := map[string][]variantShape{}

	for _, decl := range ep.Declarations {
		for _, v := range decl.Variants {
			shape := variantShape{Name: v.Name, Message: v.Message, HasMessage: v.HasMessage}
			for _, f := range v.Fields {
				shape.Fields = append(shape.Fields, f.Name+" "+f.Type)
			}

			got[decl.Name] = append(got[decl.Name], shape)
		}
	}

	want := map[string][]variantShape{
		"Storage": {
			{Name: "NotFound", Fields: []string{"ID uint32"}},
			{Name: "Mismatch", Fields: []string{"Expected uint32", "Actual uint32"}, Message: "size mismatch", HasMessage: true},
			{Name: "Closed", Message: "storage closed", HasMessage: true},
			{Name: "IO", Fields: []string{"Err *os.PathError"}},
			{Name: "Timeout"},
		},
		"Network": {
			{Name: "BadURL", Fields: []string{"URL *url.URL"}, Message: "bad url", HasMessage: true},
			{Name: "Refused"},
			{Name: "Reset"},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"// Network describes transport failures."}, ep.Declarations[1].Doc); diff != "" {
		t.Errorf("Parse() doc mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"// NotFound is returned when the key is missing."}, ep.Declarations[0].Variants[0].Doc); diff != "" {
		t.Errorf("Parse() variant doc mismatch (-want +got):\n%s", diff)
	}
}
