package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type Header struct {
	Title         InterpolatedString    `yaml:"title"`
	Logo          Logo                  `yaml:"logo"`
	IdleTimeout   *InterpolatedDuration `yaml:"idleTimeout"`
	SweepInterval *InterpolatedDuration `yaml:"sweepInterval"`
	MaxInstances  InterpolatedInt       `yaml:"maxInstances"`
}

type Logo struct {
	Src InterpolatedString `yaml:"src"`
	Alt InterpolatedString `yaml:"alt"`
}

func NewDefaultHeaderConfig() Header {
	return Header{
		Title: "${SCAFFOLD_HEADER_TITLE:-Scaffold Balancer}",
		Logo: Logo{
			Src: "${SCAFFOLD_HEADER_LOGO_SRC:-/static/logo.svg}",
			Alt: "SE2 logo",
		},
		IdleTimeout:   NewInterpolatedDuration(30 * time.Minute),
		SweepInterval: NewInterpolatedDuration(time.Minute),
		MaxInstances:  10000,
	}
}

func NewHeaderConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":               []*yaml.Comment{yaml.HeadComment(" Site header configuration")},
		".title":         []*yaml.Comment{yaml.HeadComment(" Site title displayed next to the logo")},
		".logo.src":      []*yaml.Comment{yaml.HeadComment(" Logo image url")},
		".logo.alt":      []*yaml.Comment{yaml.HeadComment(" Logo alternative text")},
		".idleTimeout":   []*yaml.Comment{yaml.HeadComment(" Delay after which the header of a page that stopped", " reporting interactions is unmounted")},
		".sweepInterval": []*yaml.Comment{yaml.HeadComment(" Interval between two searches for idle headers")},
		".maxInstances":  []*yaml.Comment{yaml.HeadComment(" Maximum number of mounted headers, the least recently", " seen ones are unmounted first. 0 disables the limit")},
	}
}
