package storage

// Storage defines a sink for batches of records.
type Storage[T any] interface {
	PutBatch(records []T) error
}

// Memory keeps records in memory.
type Memory[T any] struct {
	Records []T
}

func (m *Memory[T]) PutBatch(records []T) error {
	m.Records = append(m.Records, records...)
	return nil
}
