package state

type DiscStore interface {
	Root() string
	SetRoot(string)
}

type discStore struct {
	root string
}

func NewDiscStore() DiscStore {
	return &discStore{}
}

func (s *discStore) Root() string {
	return s.root
}

func (s *discStore) SetRoot(root string) {
	s.root = root
}
