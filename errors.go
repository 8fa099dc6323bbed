package brain

import "fmt"

// ConfigurationError is returned when the options given to a network describe
// a topology or setting that cannot be built
type ConfigurationError struct {
	Option  string // the option at fault
	Details string // what is wrong with it
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid option %q: %s", e.Option, e.Details)
}

// MalformedStateError is returned when a serialized network does not describe
// a valid network
type MalformedStateError struct {
	Layer   int    // index of the offending layer, or -1 for the tree as a whole
	Node    string // id of the offending node, if any
	Details string
}

// Error implements the error interface.
func (e *MalformedStateError) Error() string {
	switch {
	case e.Layer < 0:
		return "malformed network state: " + e.Details
	case e.Node != "":
		return fmt.Sprintf("malformed network state: layer %d: node %q: %s", e.Layer, e.Node, e.Details)
	}
	return fmt.Sprintf("malformed network state: layer %d: %s", e.Layer, e.Details)
}
