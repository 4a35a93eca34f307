package summary

import (
	"errors"
	"fmt"

	"github.com/nimezhu/hicstat/hic"
)

// SelectResolution returns the dataset's zoom for binSize. Whatever the
// dataset answers is authoritative; there is no nearest-match search.
func SelectResolution(ds Dataset, binSize int) (hic.Zoom, error) {
	z, err := ds.ResolutionFor(binSize)
	if err != nil {
		if !errors.Is(err, hic.ErrResolutionUnavailable) {
			err = fmt.Errorf("%w: %v", hic.ErrResolutionUnavailable, err)
		}
		return hic.Zoom{}, err
	}
	return z, nil
}
