package main

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

type config struct {
	TextureDirs       []string `yaml:"textureDirs"`
	Scale             float32  `yaml:"scale"`
	CollisionPrefixes []string `yaml:"collisionPrefixes"`
	Animations        []string `yaml:"animations"`

	GLTF struct {
		EmbedTextures          bool `yaml:"embedTextures"`
		TextureResolutionLimit int  `yaml:"textureResolutionLimit"`
	} `yaml:"gltf"`
}

func defaultConfigFile(input string) string {
	path := input[0:len(input)-len(filepath.Ext(input))] + ".dtsconv.yaml"
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// loadConfig reads path. Relative directories are resolved against the config file.
func loadConfig(path string) (*config, error) {
	conf := &config{}
	if path == "" {
		return conf, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	base := filepath.Dir(path)
	for i, d := range conf.TextureDirs {
		if !filepath.IsAbs(d) {
			conf.TextureDirs[i] = filepath.Join(base, d)
		}
	}
	for i, f := range conf.Animations {
		if !filepath.IsAbs(f) {
			conf.Animations[i] = filepath.Join(base, f)
		}
	}
	return conf, nil
}
