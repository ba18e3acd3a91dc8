package handler

const (
	oopsErr = "Oops! Something went wrong. Please try again later."

	msgInvalidCredentials = "Invalid username or password"
	msgDuplicateUsername  = "Username already exists. Please choose a different one."
	msgDuplicateEmail     = "Email already registered. Please use a different one."
	msgInvalidForm        = "The submitted form is invalid."
	msgRegistered         = "Registration successful! Please log in."
	msgLoggedIn           = "Logged in successfully."
	msgLoggedOut          = "You have been logged out."
)

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}
