package api

// Remote is an entry of `lxc remote list --format json`. That output is keyed by remote name and uses the Go field names.
type Remote struct {
	Addr     string `json:"Addr" yaml:"addr"`
	AuthType string `json:"AuthType,omitempty" yaml:"auth_type,omitempty"`
	Domain   string `json:"Domain,omitempty" yaml:"domain,omitempty"`
	Project  string `json:"Project,omitempty" yaml:"project,omitempty"`
	Protocol string `json:"Protocol,omitempty" yaml:"protocol,omitempty"`
	Public   bool   `json:"Public" yaml:"public"`
	Global   bool   `json:"Global" yaml:"global"`
	Static   bool   `json:"Static" yaml:"static"`
}
