package config

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"
)

type ClientConfig struct {
	Id       string `xml:"id"`
	Endpoint string `xml:"endpoint"`
	Timeout  string `xml:"timeout"`
	Log      string `xml:"log"`
	Level    string `xml:"level"`
}

type Configuartion struct {
	XMLName xml.Name     `xml:"configuration"`
	Version string       `xml:"version"`
	Client  ClientConfig `xml:"client"`
}

// TimeoutValue parses Client.Timeout. An empty value reports ok=false.
func (c *Configuartion) TimeoutValue() (d time.Duration, ok bool, err error) {
	if c.Client.Timeout == "" {
		return 0, false, nil
	}
	d, err = time.ParseDuration(c.Client.Timeout)
	if err != nil {
		return 0, false, fmt.Errorf("config timeout %q: %w", c.Client.Timeout, err)
	}
	return d, true, nil
}

// Load reads the xml configuration at path.
func Load(path string) (*Configuartion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cc := Configuartion{}
	if err := xml.NewDecoder(f).Decode(&cc); err != nil {
		return nil, fmt.Errorf("load config %v: %w", path, err)
	}
	return &cc, nil
}
