package model

import "encoding/json"

// MicroserviceStack is the technology a microservice is built with.
type MicroserviceStack string

const (
	MicroserviceStackSpringBoot MicroserviceStack = "spring-boot"
	MicroserviceStackNode       MicroserviceStack = "node"
	MicroserviceStackCustom     MicroserviceStack = "custom"
)

// DBMS is the database engine a microservice requests.
type DBMS string

const (
	DBMSNone       DBMS = "none"
	DBMSEmbedded   DBMS = "embedded"
	DBMSPostgreSQL DBMS = "postgresql"
	DBMSMySQL      DBMS = "mysql"
	DBMSOracle     DBMS = "oracle"
)

// SecurityLevel controls how strictly a microservice's roles are enforced.
type SecurityLevel string

const (
	SecurityLevelStrict  SecurityLevel = "strict"
	SecurityLevelLenient SecurityLevel = "lenient"
)

// DefaultHealthCheckPath is used when a microservice does not declare one.
const DefaultHealthCheckPath = "/api/health"

var (
	MicroserviceStacks = []string{string(MicroserviceStackSpringBoot), string(MicroserviceStackNode), string(MicroserviceStackCustom)}
	DBMSValues         = []string{string(DBMSNone), string(DBMSEmbedded), string(DBMSPostgreSQL), string(DBMSMySQL), string(DBMSOracle)}
	SecurityLevels     = []string{string(SecurityLevelStrict), string(SecurityLevelLenient)}
)

// Microservice is a backend component of the bundle.
type Microservice struct {
	Name            string                `json:"name"`
	Stack           MicroserviceStack     `json:"stack"`
	HealthCheckPath string                `json:"healthCheckPath"`
	DBMS            DBMS                  `json:"dbms,omitempty"`
	IngressPath     string                `json:"ingressPath,omitempty"`
	Roles           []string              `json:"roles,omitempty"`
	Permissions     []Permission          `json:"permissions,omitempty"`
	SecurityLevel   SecurityLevel         `json:"securityLevel,omitempty"`
	Env             []EnvironmentVariable `json:"env,omitempty"`
	Commands        *Commands             `json:"commands,omitempty"`
	Extra           Extra                 `json:"-"`
}

func (m Microservice) MarshalJSON() ([]byte, error) {
	type microservice Microservice
	data, err := marshalJSON(microservice(m))
	if err != nil {
		return nil, err
	}
	return withExtra(data, m.Extra)
}

func (m *Microservice) UnmarshalJSON(data []byte) error {
	type microservice Microservice
	var in microservice
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	extra, err := splitExtra(data, in)
	if err != nil {
		return err
	}
	*m = Microservice(in)
	m.Extra = extra
	return nil
}

// Permission grants a role of another client to the microservice.
type Permission struct {
	ClientID string `json:"clientId"`
	Role     string `json:"role"`
}

// EnvironmentVariable is either a literal value or a reference to a secret.
type EnvironmentVariable struct {
	Name         string        `json:"name"`
	Value        string        `json:"value,omitempty"`
	SecretKeyRef *SecretKeyRef `json:"secretKeyRef,omitempty"`
}

type SecretKeyRef struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

// Commands overrides the default build, run and pack commands of a component.
type Commands struct {
	Build string `json:"build,omitempty"`
	Run   string `json:"run,omitempty"`
	Pack  string `json:"pack,omitempty"`
}

// Validate checks the microservice fields that are not covered by the name rule.
func (m *Microservice) Validate() error {
	if err := ValidateIdentifier("microservice", m.Name); err != nil {
		return err
	}
	if !oneOf(string(m.Stack), MicroserviceStacks) {
		return NewValidationError("invalid stack %q for microservice %s", m.Stack, m.Name)
	}
	if m.DBMS != "" && !oneOf(string(m.DBMS), DBMSValues) {
		return NewValidationError("invalid dbms %q for microservice %s", m.DBMS, m.Name)
	}
	if m.SecurityLevel != "" && !oneOf(string(m.SecurityLevel), SecurityLevels) {
		return NewValidationError("invalid security level %q for microservice %s", m.SecurityLevel, m.Name)
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
