// Package arr transforms loosely-typed record collections: sequences and
// ordered maps of maps, structs, and scalars.
//
// # Containers
//
// Every operation accepts any container: an [*Array] (the insertion-ordered
// map returned by every operation), any [Iterable], an iter.Seq[any], or a
// native Go slice, array or map. Native maps are walked integer keys first,
// then string keys, each in ascending order.
//
// # Selectors
//
// Operations that read from records take a [Selector]: [Field] names a key
// or struct property, [Derive] and [Expr] compute a value from the whole
// record. Struct properties are found through a Get<Name> or <Name> method
// first, then an exported field or a field tagged with the name.
//
//	rows := arr.List(
//	    arr.Assoc("id", 1, "name", "a"),
//	    arr.Assoc("id", 2, "name", "b"),
//	    arr.Assoc("id", 1, "name", "c"),
//	)
//	arr.Map(rows, arr.Field("id"), arr.Field("name"), nil) // {1: "c", 2: "b"}
//	arr.Index(rows, nil, arr.Fields("id"), false)          // {1: [row0, row2], 2: [row1]}
//	arr.Multisort(rows, arr.Fields("id"))                  // row0, row2, row1
//
// # Missing data
//
// Missing keys and nil selector results are not errors: [Extract] returns
// nil, [Index] drops the record, [Map] stores nil. Errors are reserved for
// misconfiguration ([ErrConfiguration]), unusable input ([ErrInvalidInput])
// and unresolvable property maps ([ErrConversion]).
//
// # Mutation
//
// [RemoveValue] and [Multisort] modify their first argument; [Sorted] is the
// copying form of Multisort. Everything else returns a new [*Array] and
// leaves its inputs alone. Nothing in the package holds state between
// calls.
package arr
