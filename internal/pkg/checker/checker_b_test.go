package checker_test

import (
	"errors"
	"testing"

	"github.com/mailru/errgen/internal/pkg/checker"
	"github.com/mailru/errgen/internal/pkg/ds"
	"github.com/mailru/errgen/internal/pkg/egerror"
	"gotest.tools/assert"
)

func storagePackage(t *testing.T, withImport bool) *ds.ErrorPackage {
	ep := ds.NewErrorPackage()
	ep.PackageName = "storage"

	if withImport {
		if _, err := ep.AddImport("os"); err != nil {
			t.Fatalf("can't prepare test data: %s", err)
		}
	}

	decl := ds.NewTypeDeclaration("Storage", nil)

	variants := []ds.VariantDeclaration{
		{Name: "NotFound", Fields: []ds.PayloadField{{Name: "ID", Type: "uint32", Mangle: "Uint32"}}},
		{Name: "IO", Fields: []ds.PayloadField{{Name: "Err", Type: "*os.PathError", Mangle: "PtrOsPathError", Qualifiers: []string{"os"}}}},
		{Name: "Closed", Message: "storage closed", HasMessage: true},
	}

	for _, v := range variants {
		if err := decl.AddVariant(v); err != nil {
			t.Fatalf("can't prepare test data: %s", err)
		}
	}

	if err := ep.AddDeclaration(decl); err != nil {
		t.Fatalf("can't prepare test data: %s", err)
	}

	return ep
}

func TestCheck(t *testing.T) {
	empty := ds.NewErrorPackage()
	empty.PackageName = "empty"

	noName := storagePackage(t, true)
	noName.PackageName = ""

	errorField := storagePackage(t, true)
	errorField.Declarations[0].Variants[0].Fields[0].Name = "Error"

	tests := []struct {
		name      string
		files     map[string]*ds.ErrorPackage
		wantErr   error
		wantField string
	}{
		{
			name:    "valid package",
			files:   map[string]*ds.ErrorPackage{"storage": storagePackage(t, true)},
			wantErr: nil,
		},
		{
			name:    "no files",
			files:   map[string]*ds.ErrorPackage{},
			wantErr: nil,
		},
		{
			name:    "empty package name",
			files:   map[string]*ds.ErrorPackage{"storage": noName},
			wantErr: egerror.ErrCheckEmptyPackage,
		},
		{
			name:    "no declarations",
			files:   map[string]*ds.ErrorPackage{"storage": storagePackage(t, true), "empty": empty},
			wantErr: egerror.ErrCheckNoDeclarations,
		},
		{
			name:    "field package not imported",
			files:     map[string]*ds.ErrorPackage{"storage": storagePackage(t, false)},
			wantErr:   egerror.ErrCheckImportNotFound,
			wantField: "IO.Err",
		},
		{
			name:      "field shadows Error method",
			files:     map[string]*ds.ErrorPackage{"storage": errorField},
			wantErr:   egerror.ErrCheckIdentConflict,
			wantField: "NotFound.Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checker.Check(tt.files)
			if tt.wantErr == nil {
				assert.NilError(t, err)
				return
			}

			assert.Assert(t, err != nil, "Check() must fail with %v", tt.wantErr)

			var pkgErr *egerror.ErrCheckPackageDecl
			var fieldErr *egerror.ErrCheckFieldDecl

			switch {
			case errors.As(err, &pkgErr):
				assert.Check(t, errors.Is(pkgErr.Err, tt.wantErr), "got %v", err)
			case errors.As(err, &fieldErr):
				assert.Check(t, errors.Is(fieldErr.Err, tt.wantErr), "got %v", err)
				assert.Equal(t, fieldErr.Variant+"."+fieldErr.Field, tt.wantField)
			default:
				t.Errorf("Check() unexpected error %v", err)
			}
		})
	}
}
