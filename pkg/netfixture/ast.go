package netfixture

// File is the root of a parsed fixture: an ordered sequence of
// declarations, each introducing one named cell.
type File struct {
	Decls []*Decl `@@*`
}

// Decl is one declaration line. Exactly one alternative is set.
type Decl struct {
	Input  *InputDecl  `  @@`
	Output *OutputDecl `| @@`
	Cell   *CellDecl   `| @@`
}

// InputDecl declares a primary input: input <name>;
type InputDecl struct {
	Name string `"input" @Ident ";"`
}

// OutputDecl declares a primary output driven by one reference:
// output <name>(<ref>);
type OutputDecl struct {
	Name string `"output" @Ident "("`
	Ref  *Ref   `@@ ")" ";"`
}

// CellDecl declares a gate cell: <kind> <name>(<ref>, <ref>, ...);
type CellDecl struct {
	Kind string `@Ident`
	Name string `@Ident "("`
	Refs []*Ref `( @@ ( "," @@ )* )? ")" ";"`
}

// Ref is one input reference: either a constant literal or the name of a
// previously declared cell, optionally qualified with .N to select one bit
// of a multi-bit driver (bit 0 if omitted).
type Ref struct {
	Const *string `(  @( "0" | "1" | "x" | "z" )`
	Name  string  `	 | @Ident )`
	Bit   *int    `( "." @Int )?`
}
