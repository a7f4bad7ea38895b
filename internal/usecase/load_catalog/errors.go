package load_catalog

import "errors"

var (
	// ErrLoadFailed возвращается, когда хотя бы один из списков не загрузился
	ErrLoadFailed = errors.New("load_catalog: failed to load catalog")
)
