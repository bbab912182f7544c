package tools

// Func maps one string input to a human-readable result.
type Func func(input string) string

// Descriptor pairs a tool callable with the description shown to the model.
type Descriptor struct {
	Fn          Func
	Description string
}

// Registry is the static name to tool mapping built once at startup. It is
// read-only after construction, there is no dynamic registration.
type Registry map[string]Descriptor

// Lookup returns the callable for a tool name.
func (r Registry) Lookup(name string) (func(input string) string, bool) {
	descriptor, ok := r[name]
	if !ok {
		return nil, false
	}
	return descriptor.Fn, true
}

// Descriptions enumerates the name to description pairs for embedding into
// the system prompt.
func (r Registry) Descriptions() map[string]string {
	descriptions := make(map[string]string, len(r))
	for name, descriptor := range r {
		descriptions[name] = descriptor.Description
	}
	return descriptions
}

// DefaultRegistry builds the registry of the two lookup tools.
func DefaultRegistry(config Config) (Registry, error) {
	client, err := NewClient(config)
	if err != nil {
		return nil, err
	}
	return Registry{
		"get_weather": {
			Fn:          client.GetWeather,
			Description: "Takes a city name and returns current weather.",
		},
		"google_search": {
			Fn:          client.GoogleSearch,
			Description: "Takes a query and returns top 3 Google search results.",
		},
	}, nil
}
