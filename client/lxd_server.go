package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/canonical/lxd-driver/shared/api"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/resource"
	"github.com/canonical/lxd-driver/shared/version"
)

// Server handling functions

// GetServerVersion returns the version reported by `lxd version`.
func (c *Client) GetServerVersion(ctx context.Context) (*version.DottedVersion, error) {
	return queryValue[*version.DottedVersion](ctx, c, resource.KindDaemon, resource.ActionVersion, nil)
}

// CheckServerVersion fails when the daemon is older than the oldest supported release.
func (c *Client) CheckServerVersion(ctx context.Context) error {
	v, err := c.GetServerVersion(ctx)
	if err != nil {
		return err
	}

	if !v.AtLeast(version.MinimumLXD) {
		return fmt.Errorf("LXD %s is too old, at least %s is required", v, version.MinimumLXD)
	}

	return nil
}

// GetCertificates returns the trusted clients of a remote.
func (c *Client) GetCertificates(ctx context.Context, remote string) ([]api.Certificate, error) {
	return queryValue[[]api.Certificate](ctx, c, resource.KindTrust, resource.ActionList, c.scopeParams(remote))
}

// CreateCertificateToken issues a trust token for a new client and returns it decoded.
func (c *Client) CreateCertificateToken(ctx context.Context, remote string, name string) (*api.CertificateAddToken, error) {
	params := c.scopeParams(remote)
	params["name"] = name

	res, err := c.Run(ctx, resource.KindTrustToken, resource.ActionCreate, params)
	if err != nil {
		return nil, err
	}

	// The token is printed on the last line, after a description.
	lines := strings.Split(strings.TrimSpace(res.Decoded.Text), "\n")
	token, err := api.ParseCertificateAddToken(strings.TrimSpace(lines[len(lines)-1]))
	if err != nil {
		decodeErr := &DecodeError{Kind: resource.KindTrustToken, Action: resource.ActionCreate, Err: err}
		return nil, &OperationError{Kind: resource.KindTrustToken, Action: resource.ActionCreate, Command: res.Spec.String(), Err: decodeErr}
	}

	return token, nil
}

// GetServerConfig returns the value of a server configuration key.
func (c *Client) GetServerConfig(ctx context.Context, remote string, key string) (string, error) {
	params := command.Params{"key": key}
	if remote != "" {
		params["scope"] = remote
	}

	return queryValue[string](ctx, c, resource.KindConfigKey, resource.ActionGet, params)
}
