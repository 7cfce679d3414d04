package ports

import (
	"residualmap/domain/dataset"
)

// DatasetReader loads a tabular file into a dataset
type DatasetReader interface {
	Read() (*dataset.Dataset, error)
}
