// Package platform provides the filesystem details envq needs when it
// rewrites a file in place: following symlinks to the file that actually
// holds the content, and carrying permission bits over to the replacement.
// On Windows, permission changes are no-ops.
package platform
