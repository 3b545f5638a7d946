package errs

// ConfigurationError reports a container identifier that no surface host
// could resolve at attach time.
type ConfigurationError struct {
	ContainerID string
	Reason      string
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return join("container", e.ContainerID, "not found")
	}
	return join("container", e.ContainerID, ':', e.Reason)
}

// EmptyDatasetError is returned when a chart is requested for zero items.
type EmptyDatasetError struct{}

func (e *EmptyDatasetError) Error() string {
	return "empty dataset: at least one item is required"
}

// InvalidValueError reports an item whose value is missing, not numeric,
// NaN or infinite.
type InvalidValueError struct {
	Index int
	Label string
	Value any
}

func (e *InvalidValueError) Error() string {
	label := e.Label
	if label == "" {
		label = "<unlabeled>"
	}
	return join("invalid value for item", e.Index, "("+label+")", ':', valueText(e.Value))
}

func valueText(v any) string {
	switch x := v.(type) {
	case nil:
		return "missing"
	case string:
		return "\"" + x + "\""
	case float64, int, bool:
		return join(x)
	default:
		return "unsupported type"
	}
}
