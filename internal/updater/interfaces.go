package updater

// Presenter shows the outcome of a failed update to the user.
type Presenter interface {
	ShowFailure(message string)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(message string)

// ShowFailure calls f(message)
func (f PresenterFunc) ShowFailure(message string) {
	f(message)
}
