package descriptor

import (
	"bundle-cli/internal/domain/model"
	c "bundle-cli/pkg/constraints"
)

var identifier = c.All{c.Required{}, c.TypeOf{Kind: c.KindString}, c.MatchRegex(model.IdentifierPattern)}

func requiredString() c.Rule {
	return c.All{c.Required{}, c.TypeOf{Kind: c.KindString}}
}

func optionalString() c.Rule {
	return c.TypeOf{Kind: c.KindString}
}

func folder() c.Rule {
	return c.All{c.TypeOf{Kind: c.KindString}, c.MatchRegex(model.FolderPattern)}
}

// translations is an object of language code to text.
func translations() c.Rule {
	return c.All{
		c.TypeOf{Kind: c.KindObject},
		c.Values{Rule: requiredString()},
	}
}

func stringArray() c.Rule {
	return c.All{c.TypeOf{Kind: c.KindArray}, c.Each{Rule: c.TypeOf{Kind: c.KindString}}}
}

var commandsRule = c.All{
	c.TypeOf{Kind: c.KindObject},
	c.Nested{Fields: map[string]c.Rule{
		"build": optionalString(),
		"run":   optionalString(),
		"pack":  optionalString(),
	}},
}

var navRule = c.All{
	c.TypeOf{Kind: c.KindArray},
	c.Each{Rule: c.All{
		c.TypeOf{Kind: c.KindObject},
		c.Nested{Fields: map[string]c.Rule{
			"label":  c.All{c.Required{}, translations()},
			"target": c.All{c.Required{}, c.OneOf("internal", "external")},
			"url":    requiredString(),
		}},
	}},
}

var microserviceRule = c.All{
	c.TypeOf{Kind: c.KindObject},
	c.Nested{Fields: map[string]c.Rule{
		"name":            identifier,
		"stack":           c.All{c.Required{}, c.OneOf(model.MicroserviceStacks...)},
		"healthCheckPath": optionalString(),
		"dbms":            c.OneOf(model.DBMSValues...),
		"ingressPath":     optionalString(),
		"roles":           stringArray(),
		"permissions": c.All{
			c.TypeOf{Kind: c.KindArray},
			c.Each{Rule: c.All{
				c.TypeOf{Kind: c.KindObject},
				c.Nested{Fields: map[string]c.Rule{
					"clientId": requiredString(),
					"role":     requiredString(),
				}},
			}},
		},
		"securityLevel": c.OneOf(model.SecurityLevels...),
		"env": c.All{
			c.TypeOf{Kind: c.KindArray},
			c.Each{Rule: c.All{
				c.TypeOf{Kind: c.KindObject},
				c.Nested{Fields: map[string]c.Rule{
					"name":  requiredString(),
					"value": optionalString(),
					"secretKeyRef": c.All{
						c.TypeOf{Kind: c.KindObject},
						c.Nested{Fields: map[string]c.Rule{
							"name": requiredString(),
							"key":  requiredString(),
						}},
					},
				}},
			}},
		},
		"commands": commandsRule,
	}},
}

var apiClaimRule = c.All{
	c.TypeOf{Kind: c.KindObject},
	c.Nested{Fields: map[string]c.Rule{
		"name":        identifier,
		"type":        c.All{c.Required{}, c.OneOf(model.ApiClaimTypes...)},
		"serviceName": identifier,
		"bundle":      optionalString(),
	}},
	c.Variant{Field: "type", Cases: map[string]c.Rule{
		string(model.ApiClaimExternal): c.Nested{Fields: map[string]c.Rule{
			"bundle": c.Required{},
		}},
	}},
}

var microFrontendRule = c.All{
	c.TypeOf{Kind: c.KindObject},
	c.Nested{Fields: map[string]c.Rule{
		"name":          identifier,
		"stack":         c.All{c.Required{}, c.OneOf(model.MicroFrontendStacks...)},
		"type":          c.All{c.Required{}, c.OneOf(model.MicroFrontendTypes...)},
		"group":         optionalString(),
		"publicFolder":  folder(),
		"buildFolder":   folder(),
		"titles":        translations(),
		"contextParams": stringArray(),
		"slot":          c.OneOf(model.AppBuilderSlots...),
		"paths":         stringArray(),
		"apiClaims": c.All{
			c.Required{},
			c.TypeOf{Kind: c.KindArray},
			c.Each{Rule: apiClaimRule},
			c.UniqueBy("name"),
		},
		"nav":      navRule,
		"commands": commandsRule,
	}},
	c.Variant{Field: "type", Cases: map[string]c.Rule{
		string(model.MicroFrontendTypeWidget): c.Nested{Fields: map[string]c.Rule{
			"titles": c.Required{},
		}},
		string(model.MicroFrontendTypeAppBuilder): c.All{
			c.Nested{Fields: map[string]c.Rule{
				"slot": c.Required{},
			}},
			c.Variant{Field: "slot", Cases: map[string]c.Rule{
				string(model.AppBuilderSlotContent): c.Nested{Fields: map[string]c.Rule{
					"paths": c.Required{},
				}},
			}},
		},
	}},
}

// Rules is the structural rule tree of entando.json. Name clashes across the
// two component lists are checked separately by Store.Read.
var Rules c.Rule = c.All{
	c.Required{},
	c.TypeOf{Kind: c.KindObject},
	c.Nested{Fields: map[string]c.Rule{
		"name":        identifier,
		"version":     c.All{c.Required{}, c.TypeOf{Kind: c.KindString}, c.MatchRegex(model.VersionPattern)},
		"type":        c.All{c.Required{}, c.OneOf(model.BundleTypeBundle, model.BundleTypeSystemLevelBundle)},
		"description": optionalString(),
		"microservices": c.All{
			c.Required{},
			c.TypeOf{Kind: c.KindArray},
			c.Each{Rule: microserviceRule},
		},
		"microfrontends": c.All{
			c.Required{},
			c.TypeOf{Kind: c.KindArray},
			c.Each{Rule: microFrontendRule},
		},
		"svc": c.All{
			c.TypeOf{Kind: c.KindArray},
			c.Each{Rule: c.All{c.TypeOf{Kind: c.KindString}, c.MatchRegex(model.IdentifierPattern)}},
			c.UniqueValues("service"),
		},
		"global": c.All{
			c.TypeOf{Kind: c.KindObject},
			c.Nested{Fields: map[string]c.Rule{
				"nav": navRule,
			}},
		},
	}},
}
