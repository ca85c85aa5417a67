package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Backend  Backend
	Client   Client
	Lookup   Lookup
	Server   Server
	Session  Session
	Health   Health
	Logger   Logger
	Shoutrrr Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Backend.setDefaults()
	c.Client.setDefaults()
	c.Lookup.setDefaults()
	c.Server.setDefaults()
	c.Session.setDefaults()
	c.Health.SetDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"backend":  &c.Backend,
		"client":   &c.Client,
		"lookup":   &c.Lookup,
		"server":   &c.Server,
		"session":  &c.Session,
		"health":   &c.Health,
		"logger":   &c.Logger,
		"shoutrrr": &c.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Backend.toLinesNode())
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Lookup.toLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Session.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader, warner Warner) (err error) {
	c.Backend.read(reader, warner)

	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	c.Lookup.read(reader)
	c.Server.read(reader)

	err = c.Session.read(reader)
	if err != nil {
		return fmt.Errorf("reading session settings: %w", err)
	}

	err = c.Health.Read(reader)
	if err != nil {
		return fmt.Errorf("reading health settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
