// Standard attribute keys for binding operations. Using these keys keeps the
// emitted records consistent across packages and greppable: every record
// about one interpreter object carries the same class and operation fields.
package log

// Proxy and operation context.
const (
	// ClassKey identifies the wrapped library class behind a proxy.
	// Examples: "EarlyStopping", "Dense", "Sequential"
	ClassKey = "proxy.class"

	// LibraryKey names the interpreter module the class was resolved from.
	// Default: "keras"
	LibraryKey = "proxy.library"

	// OperationKey names the binding operation being performed.
	// Standard values: "new", "call", "attr", "marshal", "unmarshal"
	OperationKey = "bridge.operation"

	// MethodKey names the interpreter-side method being invoked, for
	// operations of kind "call".
	MethodKey = "bridge.method"

	// AttrKey names the interpreter-side attribute being read back.
	AttrKey = "bridge.attr"
)

// Parameter bag context.
const (
	// BagSizeKey carries the number of options marshaled for a call.
	BagSizeKey = "bag.size"

	// BagKeyKey names the individual option a record is about.
	BagKeyKey = "bag.key"
)

// Data shape context, used when array handles cross the boundary.
const (
	// RowsKey and ColsKey carry the dimensions of a marshaled matrix.
	RowsKey = "data.rows"
	ColsKey = "data.cols"
)

// Performance context.
const (
	// DurationMsKey carries elapsed wall time of a bridge call in
	// milliseconds.
	DurationMsKey = "duration.ms"
)
