package task

// Repository defines the contract for task storage operations. Every
// read and write is scoped to the owning user's id at the query level.
type Repository interface {
	Create(task *Task) error
	GetByID(id, userID string) (*Task, error)
	ListByUser(userID string, filter Filter) ([]Task, error)
	Update(task *Task) error
	Delete(id, userID string) error
}
