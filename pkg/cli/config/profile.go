package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Profile is an optional YAML file carrying the same settings as the
// flags, for operators juggling several tenants. Flag and environment
// values always win; the profile only fills gaps.
type Profile struct {
	TenantID     string `yaml:"tenant_id"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`

	Exchange struct {
		AppID             string `yaml:"app_id"`
		CertThumbprint    string `yaml:"cert_thumbprint"`
		Organization      string `yaml:"organization"`
		UserPrincipalName string `yaml:"upn"`
		Shell             string `yaml:"shell"`
	} `yaml:"exchange"`

	Workers int `yaml:"workers"`
}

// LoadProfile reads and parses a profile file
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "profile file not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read profile file", goerr.V("path", path))
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, goerr.Wrap(err, "failed to parse profile YAML", goerr.V("path", path))
	}
	return &p, nil
}

// Apply fills unset fields of the given configs from the profile
func (p *Profile) Apply(g *Graph, e *Exchange, b *Bulk) {
	setIfEmpty(&g.TenantID, p.TenantID)
	setIfEmpty(&g.ClientID, p.ClientID)
	setIfEmpty(&g.ClientSecret, p.ClientSecret)

	setIfEmpty(&e.AppID, p.Exchange.AppID)
	setIfEmpty(&e.CertThumbprint, p.Exchange.CertThumbprint)
	setIfEmpty(&e.Organization, p.Exchange.Organization)
	setIfEmpty(&e.UserPrincipalName, p.Exchange.UserPrincipalName)
	setIfEmpty(&e.Shell, p.Exchange.Shell)

	if b.Workers <= 0 && p.Workers > 0 {
		b.Workers = p.Workers
	}
}

func setIfEmpty(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}
