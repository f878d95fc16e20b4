/*
Package config provides type-safe extraction from decoded configuration and
binding documents.

# Overview

config wraps an ordered mapping and provides typed accessor methods that
handle missing keys and type mismatches by returning default values. It
also loads the documents a formatter is seeded from, keeping the key order
written in the file where the format allows it.

# Basic Usage

	cfg, err := config.FromFile("formatter.yaml")
	if err != nil {
	    return err
	}

	metrics := cfg.Bool("metrics", false)
	bindings := cfg.Mapping("bindings") // *value.OrderedMap, document order

# Formats

FromFile picks the decoder by extension:

	.yaml .yml   gopkg.in/yaml.v3, order kept
	.json        encoding/json token stream, order kept
	.jsonc       comments stripped with tidwall/jsonc, then as .json
	.toml        pelletier/go-toml/v2, keys sorted
	.env         joho/godotenv, flat strings, keys sorted

# Binding Documents

LoadBindings reads a document whose top-level keys are binding names:

	# bindings.yaml
	user:
	  name: Ann
	site:
	  title: Example

	doc, err := config.LoadBindings("bindings.yaml")
	f := formatter.New(formatter.WithBindings(doc))

LoadEnv reads dotenv files, or the process environment, into a flat
mapping suitable for a single binding such as "env".

# Type Coercion

Int accepts int, int64 and whole float64 values. StringSlice accepts
[]string, []any of strings, or a single string. Mapping accepts nested
ordered mappings and map[string]any.
*/
package config
