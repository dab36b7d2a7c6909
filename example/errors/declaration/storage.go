package declaration

import (
	"net/url"
	"os"
)

// Storage ошибки хранилища
type Storage struct {
	// NotFound ключ не найден
	NotFound struct{ ID uint32 }
	Mismatch struct{ Expected, Actual uint32 } `msg:"size mismatch"`
	Closed   struct{}                          `msg:"storage closed"`
	IO       struct{ Err *os.PathError }
	Timeout  struct{}
}

// Network ошибки сетевого слоя
type Network struct {
	BadURL         struct{ URL *url.URL } `msg:"bad url"`
	Refused, Reset struct{}
	Headers        struct{ Values map[string][]string }
}
