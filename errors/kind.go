package errors

// Kind identifies which external tool produced a ToolFailure.
// The zero value is KindSubprocess, the undifferentiated base case.
type Kind int

const (
	// KindSubprocess is a failure of an unspecified external process.
	KindSubprocess Kind = iota

	// KindDiff indicates the diff tool failed.
	KindDiff

	// KindObjdump indicates objdump failed to disassemble an object.
	KindObjdump

	// KindNm indicates nm failed to read a symbol table.
	KindNm

	// KindCompiler indicates a compiler rejected its input.
	KindCompiler

	// KindSandbox indicates the sandboxed execution environment failed.
	KindSandbox

	// KindAssembly indicates the assembler rejected its input.
	// It shares the "Compiler" tool name with KindCompiler but post-processes
	// the assembler transcript when built from a failed process.
	KindAssembly
)

type kindInfo struct {
	toolName string
	typeName string
}

var kinds = map[Kind]kindInfo{
	KindSubprocess: {toolName: "Subprocess", typeName: "SubprocessError"},
	KindDiff:       {toolName: "Diff", typeName: "DiffError"},
	KindObjdump:    {toolName: "objdump", typeName: "ObjdumpError"},
	KindNm:         {toolName: "nm", typeName: "NmError"},
	KindCompiler:   {toolName: "Compiler", typeName: "CompilationError"},
	KindSandbox:    {toolName: "Sandbox", typeName: "SandboxError"},
	KindAssembly:   {toolName: "Compiler", typeName: "AssemblyError"},
}

func (k Kind) info() kindInfo {
	if info, ok := kinds[k]; ok {
		return info
	}
	return kinds[KindSubprocess]
}

// ToolName returns the tool label used as the message prefix and as the
// "code" field of API responses.
func (k Kind) ToolName() string {
	return k.info().toolName
}

// TypeName returns the stable type label clients use to classify the failure.
func (k Kind) TypeName() string {
	return k.info().typeName
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return k.TypeName()
}
