package declaration

import (
	"net/url"
	"os"
)

// Storage describes failures of the key-value storage.
type Storage struct {
	// NotFound is returned when the key is missing.
	NotFound struct{ ID uint32 }
	Mismatch struct{ Expected, Actual uint32 } `msg:"size mismatch"`
	Closed   struct{}                          `msg:"storage closed"`
	IO       struct{ Err *os.PathError }
	Timeout  struct{}
}

type (
	// Network describes transport failures.
	Network struct {
		BadURL         struct{ URL *url.URL } `msg:"bad url"`
		Refused, Reset struct{}
	}
)
