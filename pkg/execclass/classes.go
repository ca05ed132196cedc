// Copyright 2026 crashrep project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package execclass

// classes is the full exploitability taxonomy. The table is static data
// established at startup and never mutated, short names are unique.
var classes = []ExecutionClass{
	{Exploitable, "SegFaultOnPc", "Segmentation fault on program counter",
		"The target tried to access data at an address that matches the program counter. This likely indicates that the program counter contents are tainted and can be controlled by an attacker."},
	{Exploitable, "ReturnAv", "Access violation during return instruction",
		"The target crashed on a return instruction, which likely indicates stack corruption."},
	{Exploitable, "BranchAv", "Access violation during branch instruction",
		"The target crashed on a branch instruction, which may indicate that the control flow is tainted."},
	{Exploitable, "CallAv", "Access violation during call instruction",
		"The target crashed on a call instruction, which may indicate that the control flow is tainted."},
	{Exploitable, "DestAv", "Access violation on destination operand",
		"The target crashed on an access violation at an address matching the destination operand of the instruction. This likely indicates a write access violation, which means the attacker may control the write address and/or value."},
	{Exploitable, "BranchAvTainted", "Access violation during branch instruction from tainted source",
		"The target crashed on loading from memory (SourceAv). After taint tracking, target operand of branch instruction could be tainted."},
	{Exploitable, "CallAvTainted", "Access violation during call instruction from tainted source",
		"The target crashed on loading from memory (SourceAv). After taint tracking, target operand of call instruction could be tainted."},
	{Exploitable, "DestAvTainted", "Access violation on destination operand from tainted source",
		"The target crashed on loading from memory (SourceAv). After taint tracking, addres operand of memory store instruction could be tainted. This likely indicates a write access violation, which means the attacker may control the write address and/or value."},
	{NotExploitable, "AbortSignal", "Abort signal",
		"The target is stopped on a SIGABRT. SIGABRTs are often generated by libc and compiled check-code to indicate potentially exploitable conditions."},
	{NotExploitable, "TrapSignal", "Trap signal",
		"The target is stopped on a SIGTRAP. The SIGTRAP signal is sent to a process when an exception (or trap) occurs: a condition that a debugger has requested to be informed of – for example, when a particular function is executed, or when a particular variable changes value. "},
	{NotExploitable, "AccessViolation", "Access violation",
		"The target crashed due to an access violation but there is not enough additional information available to determine exploitability. Manual analysis is needed."},
	{NotExploitable, "SourceAv", "Access violation on source operand",
		"The target crashed on an access violation at an address matching the source operand of the current instruction. This likely indicates a read access violation."},
	{ProbablyExploitable, "BadInstruction", "Bad instruction",
		"The target tried to execute a malformed or privileged instruction. This may indicate that the control flow is tainted."},
	{ProbablyExploitable, "SegFaultOnPcNearNull", "Segmentation fault on program counter near NULL",
		"The target tried to access data at an address that matches the program counter. This may indicate that the program counter contents are tainted, however, it may also indicate a simple NULL dereference."},
	{ProbablyExploitable, "BranchAvNearNull", "Access violation near NULL during branch instruction",
		"The target crashed on a branch instruction, which may indicate that the control flow is tainted. However, there is a chance it could be a NULL dereference."},
	{ProbablyExploitable, "CallAvNearNull", "Access violation near NULL during call instruction",
		"The target crashed on a call instruction, which may indicate that the control flow is tainted. However, there is a chance it could be a NULL dereference."},
	{ProbablyExploitable, "DestAvNearNull", "Access violation near NULL on destination operand",
		"The target crashed on an access violation at an address matching the destination operand of the instruction. This likely indicates a write access violation, which means the attacker may control write address and/or value. However, it there is a chance it could be a NULL dereference."},
	{NotExploitable, "SourceAvNearNull", "Access violation near NULL on source operand",
		"The target crashed on an access violation at an address matching the source operand of the current instruction. This likely indicates a read access violation, which may mean the application crashed on a simple NULL dereference to data structure that has no immediate effect on control of the processor."},
	{ProbablyExploitable, "StackGuard", "Stack buffer overflow",
		"The target program is aborted due to stack cookie overwrite."},
	{NotExploitable, "SafeFunctionCheck", "Safe function check guard",
		"The target program is aborted due to safe function check guard: _chk()."},
	{ProbablyExploitable, "HeapError", "Heap error",
		"The target program is aborted due to error produced by heap allocator functions."},
	{NotExploitable, "FPE", "Arithmetic exception",
		"The target crashed due to arithmetic floating point exception."},
	{NotExploitable, "StackOverflow", "Stack overflow",
		"The target crashed on an access violation where the faulting instruction's mnemonic and the stack pointer seem to indicate a stack overflow."},
	{Undefined, "Undefined", "Undefined class",
		"There is no execution class for this type of exception."},
	{NotExploitable, "double-free", "Deallocation of freed memory",
		"The target crashed while trying to deallocate already freed memory."},
	{NotExploitable, "bad-free", "Invalid memory deallocation",
		"The target crashed on attempting free on address which was not malloc()-ed."},
	{NotExploitable, "alloc-dealloc-mismatch", "Invalid use of alloc/dealloc functions",
		"Mismatch between allocation and deallocation APIs."},
	{NotExploitable, "unknown-crash", "Sanitizer check fail",
		"Invalid memory access."},
	{NotExploitable, "heap-buffer-overflow(read)", "Heap buffer overflow",
		"The target reads data past the end, or before the beginning, of the intended heap buffer."},
	{ProbablyExploitable, "heap-buffer-overflow", "Heap buffer overflow",
		"The target attempts to read or write data past the end, or before the beginning, of the intended heap buffer."},
	{Exploitable, "heap-buffer-overflow(write)", "Heap buffer overflow",
		"The target writes data past the end, or before the beginning, of the intended heap buffer."},
	{NotExploitable, "global-buffer-overflow(read)", "Global buffer overflow",
		"The target reads data past the end, or before the beginning, of the intended global buffer."},
	{ProbablyExploitable, "global-buffer-overflow", "Global buffer overflow",
		"The target attempts to read or write data past the end, or before the beginning, of the intended global buffer."},
	{Exploitable, "global-buffer-overflow(write)", "Global buffer overflow",
		"The target writes data past the end, or before the beginning, of the intended global buffer."},
	{NotExploitable, "stack-use-after-scope(read)", "Use of out-of-scope stack memory",
		"The target crashed when reading from a stack address outside the lexical scope of a variable's lifetime."},
	{ProbablyExploitable, "stack-use-after-scope", "Use of out-of-scope stack memory",
		"The target crashed when using a stack address outside the lexical scope of a variable's lifetime."},
	{Exploitable, "stack-use-after-scope(write)", "Use of out-of-scope stack memory",
		"The target crashed when writing on a stack address outside the lexical scope of a variable's lifetime."},
	{ProbablyExploitable, "use-after-poison", "Using poisoned memory",
		"The target crashed on trying to use the memory that was previously poisoned."},
	{NotExploitable, "stack-use-after-return(read)", "Use of stack memory after return",
		"The target crashed when reading from a stack memory of a returned function."},
	{ProbablyExploitable, "stack-use-after-return", "Use of stack memory after return",
		"The target crashed when using a stack memory of a returned function."},
	{Exploitable, "stack-use-after-return(write)", "Use of stack memory after return",
		"The target crashed when writing to a stack memory of a returned function."},
	{NotExploitable, "stack-buffer-overflow(read)", "Stack buffer overflow",
		"The target reads data past the end, or before the beginning, of the intended stack buffer."},
	{ProbablyExploitable, "stack-buffer-overflow", "Stack buffer overflow",
		"The target attempts to read or write data past the end, or before the beginning, of the intended stack buffer."},
	{Exploitable, "stack-buffer-overflow(write)", "Stack buffer overflow",
		"The target writes data past the end, or before the beginning, of the intended stack buffer."},
	{NotExploitable, "initialization-order-fiasco", "Bad initialization order",
		"Initializer for a global variable accesses dynamically initialized global from another translation unit, which is not yet initialized."},
	{NotExploitable, "stack-buffer-underflow(read)", "Stack buffer underflow",
		"The target reads from a buffer using buffer access mechanisms such as indexes or pointers that reference memory locations prior to the targeted buffer."},
	{ProbablyExploitable, "stack-buffer-underflow", "Stack buffer underflow",
		"The target is using buffer with an index or pointer that references a memory location prior to the beginning of the buffer."},
	{Exploitable, "stack-buffer-underflow(write)", "Stack buffer underflow",
		"The target writes to a buffer using an index or pointer that references a memory location prior to the beginning of the buffer."},
	{NotExploitable, "heap-use-after-free(read)", "Use of deallocated memory",
		"The target crashed when reading from memory after it has been freed."},
	{ProbablyExploitable, "heap-use-after-free", "Use of deallocated memory",
		"The target crashed when using memory after it has been freed."},
	{Exploitable, "heap-use-after-free(write)", "Use of deallocated memory",
		"The target crashed when writing to memory after it has been freed."},
	{NotExploitable, "container-overflow(read)", "Container overflow",
		"The target crashed when reading from memory inside the allocated heap region but outside of the current container bounds."},
	{ProbablyExploitable, "container-overflow", "Container overflow",
		"The target crashed when using memory inside the allocated heap region but outside of the current container bounds."},
	{Exploitable, "container-overflow(write)", "Container overflow",
		"The target crashed when writing to memory inside the allocated heap region but outside of the current container bounds."},
	{NotExploitable, "new-delete-type-mismatch", "Invalid use of new/delete functions",
		"Deallocation size different from allocation size."},
	{NotExploitable, "bad-malloc_usable_size", "Bad function use",
		"Invalid argument to malloc_usable_size."},
	{Exploitable, "param-overlap", "Overlapping memory ranges",
		"Call to function disallowing overlapping memory ranges."},
	{ProbablyExploitable, "negative-size-param", "Use of negative size",
		"Negative size used when accessing memory."},
	{NotExploitable, "odr-violation", "Multiple symbol definition",
		"Symbol defined in multiple translation units."},
	{NotExploitable, "memory-leaks", "Memory leaks",
		"The target does not sufficiently track and release allocated memory after it has been used, which slowly consumes remaining memory."},
	{ProbablyExploitable, "calloc-overflow", "Calloc parameters overflow",
		"Overflow in calloc parameters."},
	{ProbablyExploitable, "reallocarray-overflow", "Realloc parameters overflow",
		"Overflow in realloc parameters."},
	{ProbablyExploitable, "pvalloc-overflow", "Pvalloc parameters overflow",
		"Overflow in pvalloc parameters."},
	{NotExploitable, "invalid-allocation-alignment", "Invalid alignment",
		"Invalid allocation alignment."},
	{NotExploitable, "invalid-aligned-alloc-alignment", "Invalid alignment",
		"Invalid alignment requested in aligned_alloc."},
	{NotExploitable, "invalid-posix-memalign-alignment", "Invalid alignment",
		"Invalid alignment requested in posix_memalign."},
	{NotExploitable, "allocation-size-too-big", "Allocation size too big",
		"Requested allocation size exceeds maximum supported size."},
	{NotExploitable, "out-of-memory", "Memory limit exceeded",
		"The target has exceeded the memory limit."},
	{NotExploitable, "fuzz target exited", "Fuzz target exited",
		"Fuzz target exited."},
	{NotExploitable, "timeout", "Target timeout expired",
		"Timeout after several seconds."},
	{ProbablyExploitable, "overwrites-const-input", "Attempt to overwrite constant input",
		"Fuzz target overwrites its constant input."},
}
