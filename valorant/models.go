// Package valorant is a client for the public game-data catalog (agents and maps).
package valorant

// Role is an agent's class, e.g. Duelist.
type Role struct {
	UUID        string `json:"uuid" jsonschema:"description=Role identifier."`
	DisplayName string `json:"displayName" jsonschema:"description=Role name."`
	Description string `json:"description,omitempty"`
	DisplayIcon string `json:"displayIcon,omitempty"`
}

type Agent struct {
	// UUID is the stable identifier used as the favorite key.
	UUID        string `json:"uuid" jsonschema:"description=Agent identifier. Used as the favorite key."`
	DisplayName string `json:"displayName" jsonschema:"description=Agent name."`
	Description string `json:"description,omitempty"`
	// DisplayIcon is the URL of the small portrait.
	DisplayIcon string `json:"displayIcon,omitempty" jsonschema:"description=URL of the agent icon."`
	// Role may be nil for agents the catalog has not classified.
	Role                *Role `json:"role,omitempty"`
	IsPlayableCharacter bool  `json:"isPlayableCharacter"`
}

// RoleName returns the role display name or an empty string.
func (a *Agent) RoleName() string {
	if a.Role == nil {
		return ""
	}
	return a.Role.DisplayName
}

func (a *Agent) String() string {
	return a.DisplayName
}

type Map struct {
	UUID        string `json:"uuid" jsonschema:"description=Map identifier."`
	DisplayName string `json:"displayName" jsonschema:"description=Map name."`
	// Splash is the URL of the full-size loading screen image.
	Splash      string `json:"splash,omitempty" jsonschema:"description=URL of the splash image."`
	DisplayIcon string `json:"displayIcon,omitempty"`
	Coordinates string `json:"coordinates,omitempty"`
}

func (m *Map) String() string {
	return m.DisplayName
}
