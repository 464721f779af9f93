package dosing

import (
	"errors"
	"fmt"
)

// ValidateTable checks reference data before it is loaded: every entry must
// be valid, dose numbers must run contiguously from 1 for each key, and no
// two preferred entries of one dose may cover the same age.
func ValidateTable(entries []Entry) error {
	var errs []error
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	table := NewTable(entries)
	for _, key := range table.Keys() {
		highest := table.MaxDose(key)
		for dose := 1; dose <= highest; dose++ {
			rows := table.ForDose(key, dose)
			if len(rows) == 0 {
				errs = append(errs, fmt.Errorf("%w: %s has no dose %d", ErrInvalidEntry, key, dose))
				continue
			}
			for i := 0; i < len(rows); i++ {
				for j := i + 1; j < len(rows); j++ {
					if rows[i].Preferred && rows[j].Preferred && rows[i].overlaps(rows[j]) {
						errs = append(errs, fmt.Errorf("%w: %s dose %d has overlapping preferred entries %d and %d",
							ErrInvalidEntry, key, dose, rows[i].ID, rows[j].ID))
					}
				}
			}
		}
	}
	return errors.Join(errs...)
}
