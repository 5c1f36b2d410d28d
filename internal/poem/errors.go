package poem

import "fmt"

// ConfigurationError means a required server setting is missing. No provider
// call is attempted when it is returned.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not set. Add it to .env (or your deployment env) to use AI features.", e.Setting)
}

// MalformedRequestError is logged and recovered from; the default style is used
type MalformedRequestError struct {
	Err error
}

func (e *MalformedRequestError) Error() string {
	return fmt.Sprintf("malformed request body: %v", e.Err)
}

func (e *MalformedRequestError) Unwrap() error {
	return e.Err
}

// ProviderError covers transport failures and responses without usable text
type ProviderError struct {
	// EmptyOutput is true when the provider answered but produced no text
	EmptyOutput bool
	Message     string
	Err         error
}

func (e *ProviderError) Error() string {
	if e.EmptyOutput {
		return "Poem generation failed: " + e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	return "Unknown error occurred"
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
