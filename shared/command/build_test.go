package command

import (
	"errors"
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/suite"

	"github.com/canonical/lxd-driver/shared/address"
	"github.com/canonical/lxd-driver/shared/resource"
)

type buildSuite struct {
	suite.Suite
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(buildSuite))
}

func exampleValue(p ParamSpec) any {
	if p.Example != "" {
		return p.Example
	}

	switch p.Type {
	case ParamAddress:
		return "res1"
	case ParamSubAddress:
		return "res1/sub1"
	case ParamScope:
		return "local"
	case ParamName:
		return "name1"
	case ParamRemote:
		return "remote1"
	case ParamSwitch:
		return true
	}

	return "value1"
}

func requiredParams(entry Entry) Params {
	params := Params{}
	for _, p := range entry.Params {
		if !p.Optional {
			params[p.Name] = exampleValue(p)
		}
	}

	return params
}

func (s *buildSuite) build(kind resource.Kind, action resource.Action, params Params, opts ...BuildOption) []string {
	spec, err := Build(kind, action, params, opts...)
	s.Require().NoError(err)
	return spec.Args()
}

func (s *buildSuite) TestStorageCreate() {
	pool, err := address.ResolveLocal("pool1")
	s.Require().NoError(err)

	spec, err := Build(resource.KindStorage, resource.ActionCreate, Params{"storage_address": pool, "filesystem": "btrfs"})
	s.Require().NoError(err)
	s.Equal(BinaryLXC, spec.Binary())
	s.Equal([]string{"storage", "create", "local:pool1", "btrfs"}, spec.Args())
}

func (s *buildSuite) TestImageCopyDefaults() {
	args := s.build(resource.KindImage, resource.ActionCopy, Params{"source": "ubuntu-20.04", "alias": "my-image"})
	s.Equal([]string{"image", "copy", "images:ubuntu-20.04", "local:", "--alias", "my-image"}, args)
}

func (s *buildSuite) TestImageCopyBetweenRemotes() {
	args := s.build(resource.KindImage, resource.ActionCopy, Params{"source": "prod:ubuntu", "destination": "backup", "alias": "u"})
	s.Equal([]string{"image", "copy", "prod:ubuntu", "backup:", "--alias", "u"}, args)
}

func (s *buildSuite) TestContainerRenameKeepsNewName() {
	args := s.build(resource.KindContainer, resource.ActionRename, Params{"old": "c1", "new": "c2"})
	s.Equal([]string{"move", "local:c1", "local:c2"}, args)
	s.Contains(args[len(args)-1], "c2")

	args = s.build(resource.KindContainer, resource.ActionRename, Params{"old": "r:c1", "new": "c2"})
	s.Equal([]string{"move", "r:c1", "r:c2"}, args)
}

func (s *buildSuite) TestCopyIsFullyQualified() {
	args := s.build(resource.KindContainer, resource.ActionCopy, Params{"source": "r:c1", "destination": "c2"})
	s.Equal([]string{"copy", "r:c1", "r:c2"}, args)

	args = s.build(resource.KindContainer, resource.ActionCopy, Params{"source": "c1", "destination": "r:c1"})
	s.Equal([]string{"copy", "local:c1", "r:c1"}, args)

	args = s.build(resource.KindProfile, resource.ActionCopy, Params{"source": "default", "destination": "r:default"})
	s.Equal([]string{"profile", "copy", "local:default", "r:default"}, args)
}

func (s *buildSuite) TestSnapshots() {
	args := s.build(resource.KindSnapshot, resource.ActionCopy, Params{"snapshot": "c1/snap0", "destination": "r:c2"})
	s.Equal([]string{"copy", "local:c1/snap0", "r:c2"}, args)

	args = s.build(resource.KindSnapshot, resource.ActionDelete, Params{"snapshot": "r:c1/snap0"})
	s.Equal([]string{"delete", "r:c1/snap0"}, args)

	args = s.build(resource.KindSnapshot, resource.ActionCreate, Params{"instance": "c1", "name": "snap0", "stateful": false})
	s.Equal([]string{"snapshot", "local:c1", "snap0"}, args)

	_, err := Build(resource.KindSnapshot, resource.ActionDelete, Params{"snapshot": "c1"})
	s.ErrorIs(err, ErrInvalidParam)
}

func (s *buildSuite) TestFlagsFollowPositionals() {
	args := s.build(resource.KindContainer, resource.ActionLaunch, Params{
		"ephemeral": true,
		"profile":   "default",
		"instance":  "c1",
		"image":     "ubuntu/22.04",
	})

	s.Equal([]string{"launch", "images:ubuntu/22.04", "local:c1", "--profile", "default", "--ephemeral"}, args)
}

func (s *buildSuite) TestListScopes() {
	s.Equal([]string{"list", "local:"}, s.build(resource.KindContainer, resource.ActionList, nil))
	s.Equal([]string{"list", "r:", "--format", "json"}, s.build(resource.KindContainer, resource.ActionList, Params{"scope": "r", "format": "json"}))
	s.Equal([]string{"profile", "list", "r:"}, s.build(resource.KindProfile, resource.ActionList, Params{"scope": "r:"}))
	s.Equal([]string{"image", "list", "images:", "ubuntu"}, s.build(resource.KindImage, resource.ActionList, Params{"scope": "images", "filter": "ubuntu"}))

	_, err := Build(resource.KindContainer, resource.ActionList, Params{"format": "xml"})
	s.ErrorIs(err, ErrInvalidParam)
}

func (s *buildSuite) TestFixedCommands() {
	spec, err := Build(resource.KindProject, resource.ActionDelete, Params{"project": "p1"})
	s.Require().NoError(err)
	s.Equal(BinaryLXC, spec.Binary())
	s.Equal([]string{"project", "delete", "local:p1"}, spec.Args())

	s.Equal([]string{"image", "alias", "create", "local:a1", "abc123"},
		s.build(resource.KindImageAlias, resource.ActionCreate, Params{"alias": "a1", "fingerprint": "abc123"}))
	s.Equal([]string{"image", "alias", "delete", "r:a1"},
		s.build(resource.KindImageAlias, resource.ActionDelete, Params{"alias": "r:a1"}))
	s.Equal([]string{"remote", "rename", "old", "new"},
		s.build(resource.KindRemote, resource.ActionRename, Params{"old": "old", "new": "new"}))
	s.Equal([]string{"profile", "remove", "local:c1", "default"},
		s.build(resource.KindProfile, resource.ActionDetach, Params{"instance": "c1", "profile": "default"}))
	s.Equal([]string{"storage", "volume", "attach", "local:default", "vol1", "c1", "data", "/mnt"},
		s.build(resource.KindVolume, resource.ActionAttach, Params{"pool": "default", "volume": "vol1", "instance": "c1", "path": "/mnt"}))
	s.Equal([]string{"config", "set", "core.https_address", ":8443"},
		s.build(resource.KindConfigKey, resource.ActionSet, Params{"key": "core.https_address", "value": ":8443"}))
}

func (s *buildSuite) TestDaemonCommands() {
	spec, err := Build(resource.KindCluster, resource.ActionDelete, Params{"address": "10.0.0.2:8443"})
	s.Require().NoError(err)
	s.Equal(BinaryLXD, spec.Binary())
	s.Equal([]string{"cluster", "remove-raft-node", "10.0.0.2:8443"}, spec.Args())
}

func (s *buildSuite) TestIdempotent() {
	for _, entry := range DefaultRegistry().Entries() {
		params := requiredParams(entry)

		first, err := Build(entry.Kind, entry.Action, params)
		s.Require().NoError(err)

		second, err := Build(entry.Kind, entry.Action, params)
		s.Require().NoError(err)

		s.True(first.Equal(second), entry.Key().String())
		s.Equal(first, second)
	}
}

func (s *buildSuite) TestRoundTripEveryEntry() {
	for _, entry := range DefaultRegistry().Entries() {
		key := entry.Key().String()

		_, err := Build(entry.Kind, entry.Action, requiredParams(entry))
		s.NoError(err, key)

		all := Params{}
		for _, p := range entry.Params {
			all[p.Name] = exampleValue(p)
		}

		_, err = Build(entry.Kind, entry.Action, all)
		s.NoError(err, key)

		for _, p := range entry.Params {
			if p.Optional {
				continue
			}

			params := requiredParams(entry)
			delete(params, p.Name)

			_, err = Build(entry.Kind, entry.Action, params)
			s.ErrorIs(err, ErrMissingParam, key)

			var buildErr *BuildError
			s.Require().True(errors.As(err, &buildErr), key)
			s.Equal(p.Name, buildErr.Param, key)
		}

		params := requiredParams(entry)
		params["undeclared"] = "x"

		_, err = Build(entry.Kind, entry.Action, params)
		s.ErrorIs(err, ErrUnexpectedParam, key)
	}
}

func (s *buildSuite) TestUnsupportedAction() {
	_, err := Build(resource.KindOperation, resource.ActionLaunch, Params{})
	s.ErrorIs(err, ErrUnsupportedAction)

	var buildErr *BuildError
	s.Require().ErrorAs(err, &buildErr)
	s.Equal(resource.KindOperation, buildErr.Kind)
	s.Equal(resource.ActionLaunch, buildErr.Action)
}

func (s *buildSuite) TestInvalidValues() {
	_, err := Build(resource.KindContainer, resource.ActionStart, Params{"instance": ":c1"})
	s.ErrorIs(err, ErrInvalidParam)
	s.ErrorIs(err, address.ErrInvalidRemoteName)

	_, err = Build(resource.KindContainer, resource.ActionStart, Params{"instance": 42})
	s.ErrorIs(err, ErrInvalidParam)

	_, err = Build(resource.KindProfile, resource.ActionRename, Params{"profile": "p1", "new": "r:p2"})
	s.ErrorIs(err, ErrInvalidParam)

	_, err = Build(resource.KindNetworkZone, resource.ActionCreate, Params{"zone": "bad..zone"})
	s.ErrorIs(err, ErrInvalidParam)

	_, err = Build(resource.KindContainer, resource.ActionStop, Params{"instance": "c1", "force": "maybe"})
	s.ErrorIs(err, ErrInvalidParam)

	_, err = Build(resource.KindRemote, resource.ActionCreate, Params{"name": "a/b", "url": "https://example.com"})
	s.ErrorIs(err, ErrInvalidParam)
}

func (s *buildSuite) TestDefaultRemoteOption() {
	args := s.build(resource.KindContainer, resource.ActionStart, Params{"instance": "c1"}, WithDefaultRemote("prod"))
	s.Equal([]string{"start", "prod:c1"}, args)

	args = s.build(resource.KindContainer, resource.ActionStart, Params{"instance": "local:c1"}, WithDefaultRemote("prod"))
	s.Equal([]string{"start", "local:c1"}, args)

	args = s.build(resource.KindContainer, resource.ActionLaunch, Params{"image": "ubuntu", "instance": "c1"}, WithDefaultRemote("prod"))
	s.Equal([]string{"launch", "images:ubuntu", "prod:c1"}, args)
}

func (s *buildSuite) TestRemoteValidator() {
	errUnknown := errors.New("unknown remote")
	validator := WithRemoteValidator(func(name string) error {
		if name != "prod" {
			return errUnknown
		}

		return nil
	})

	_, err := Build(resource.KindContainer, resource.ActionStart, Params{"instance": "ghost:c1"}, validator)
	s.ErrorIs(err, ErrInvalidParam)
	s.ErrorIs(err, errUnknown)

	_, err = Build(resource.KindContainer, resource.ActionList, Params{"scope": "ghost"}, validator)
	s.ErrorIs(err, errUnknown)

	_, err = Build(resource.KindContainer, resource.ActionStart, Params{"instance": "prod:c1"}, validator)
	s.NoError(err)

	_, err = Build(resource.KindContainer, resource.ActionStart, Params{"instance": "c1"}, validator)
	s.NoError(err)
}

func (s *buildSuite) TestAddressValues() {
	scope, err := address.RemoteScope("r")
	s.Require().NoError(err)

	args := s.build(resource.KindContainer, resource.ActionList, Params{"scope": scope})
	s.Equal([]string{"list", "r:"}, args)

	_, err = Build(resource.KindContainer, resource.ActionStart, Params{"instance": address.Address{Scope: scope}})
	s.ErrorIs(err, address.ErrEmptyResource)
}

func (s *buildSuite) TestSpecString() {
	spec, err := Build(resource.KindContainer, resource.ActionSet, Params{"instance": "c1", "key": "user.note", "value": "hello world"})
	s.Require().NoError(err)

	words, err := shellquote.Split(spec.String())
	s.Require().NoError(err)
	s.Equal([]string{"lxc", "config", "set", "local:c1", "user.note", "hello world"}, words)
}

func (s *buildSuite) TestSpecIsImmutable() {
	spec := NewSpec(BinaryLXC, "list", "local:")
	args := spec.Args()
	args[0] = "delete"

	s.Equal([]string{"list", "local:"}, spec.Args())
}
