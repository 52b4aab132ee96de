package models

// Session identifies the logged-in user. It is returned by login/sign-up and
// passed explicitly into every note operation instead of being held as
// ambient state.
type Session struct {
	Username string
}
