/*
Package operation implements the file system batch operations.

	+--------+  +------+  +-------+  +-------+  +------+
	| Unlink |  | Read |  | Write |  | Mkdir |  | Copy |
	+---+----+  +--+---+  +---+---+  +---+---+  +--+---+
	    |          |          |          |         |
	    +----------+----+-----+----------+---------+
	                    |
	         +----------+----------+
	         |  Runner (parallel / |
	         |  serial task lists) |
	         +----------+----------+
	                    |
	           filesystem.FileSystem

🎯 Operations:
  - Unlink: delete files in parallel, missing files are not an error
  - Read: read one file and report its size
  - Write: write files in parallel and report the size found on disk
  - Mkdir: create every ancestor of every target, parents first, one at a time
  - Copy: mirror a directory tree, copying only files whose destination is
    missing or older than the source

⚡ Errors:
Every failure is logged through the Logger where it happens and returned
once. Batches report only the first failure. Nothing is rolled back.

🔄 Copy concurrency:
Each directory level is one errgroup task. Subdirectories are started
without waiting on them, files of one directory are handled in listing
order, and Copy returns when the group is drained. The first failure
cancels the group context so outstanding branches stop at their next entry.

🔍 Example:

	op, err := operation.New(operation.Options{Logger: log.New(os.Stdout, zerolog.Nop())})
	if err != nil {
		return err
	}
	res, err := op.Copy(ctx, operation.CopyConfig{Source: "src", Target: "dst"})
*/
package operation
