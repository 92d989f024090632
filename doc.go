// Package esmap provides the shared vocabulary of the esmap module:
//
// - A stable error model via Issues (JSON Pointer into the mapping, code, message)
// - ConvertOptions for composing type names and declaring plural fields
//
// The module turns an Elasticsearch index mapping into typed views:
//
// - fieldname: the codec between dotted paths (user.address.city) and flat
//   identifiers (user__address__city)
// - mapping: the parsed mapping tree, read from JSON, YAML or decoded maps
// - typesys: the produced types and the Registry that deduplicates them
// - projector: the output view and the Aggregatable/Searchable/Analyzed input views
// - fieldfamily: enumerations of field names per Elasticsearch type family
// - rehydrate: decoding of flat field names inside submitted query arguments
//
// Typical usage:
//
//	root, _, err := mapping.ParseJSON(data, mapping.Options{})
//	reg := typesys.NewRegistry()
//	views, err := projector.Build(reg, root, "User", esmap.ConvertOptions{PluralFields: []string{"tags"}})
//	fam := fieldfamily.New(reg, views.Fields, esmap.ConvertOptions{})
//	dateFields, err := fam.FieldNames(fieldfamily.Date)
//
//	r := rehydrate.New(views.Fields.All())
//	args := r.Query(rawArgs)
package esmap
