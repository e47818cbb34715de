/*
Package nlisp evaluates a small Lisp dialect.

A line of text goes through three stages. The lexer package turns it into
tokens, the parser package builds S-expression trees from them, and this
package walks each tree and applies builtin operators:

	(+ 1 2 3)          => 6
	(* 2 (+ 1 2))      => 6
	(quote (+ 1 2))    => (+ . (1 . (2 . NIL)))
	(length (1 2 3))   => 3
	(car (quote (1 2))) => 1

Values and programs share the same tree type, ast.Sexpr. Numbers, booleans,
strings and NIL evaluate to themselves; symbols only mean something at the
head of an application, since there are no variables.

Arithmetic and comparison fold their evaluated arguments from the right,
with the NIL terminator as identity. For comparisons that makes
(> 3 2 1) the same as (> 3 (> 2 1)), which fails because a boolean is not a
number.

The names listp, atom, null, eq, equal, cons, append, defun and eval are
reserved. Applying them fails with ErrUnimplemented unless an embedder
supplies a Builtin for them with WithBuiltin.

Results print in dotted notation only, see ast.Encode.
*/
package nlisp
