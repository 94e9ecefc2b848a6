// Package skeleton discovers template sets ("skeletons") and loads their
// configuration for the skeleton CLI.
//
// A skeleton root (conventionally ".skeleton" in the working directory)
// contains one subdirectory per component type. Each subdirectory holds a
// config file and any number of template files:
//
//	.skeleton/
//	  component/
//	    config.json
//	    {name}.tsx.handlebars
//	  template/
//	    config.json
//	    {name}.tsx.handlebars
//
// config.json is parsed as JSONC via github.com/tidwall/jsonc so that
// comments and trailing commas are accepted. When config.json is absent the
// registry falls back to config.yaml or config.yml (gopkg.in/yaml.v3).
package skeleton
