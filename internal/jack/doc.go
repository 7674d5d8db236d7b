/*
Package jack parses token sequences of the Jack teaching language into
concrete parse trees.

Grammars

	program        --> class* ;
	class          --> "class" IDENT "{" classVarDec* subroutine* "}" ;
	classVarDec    --> ( "static" | "field" ) type IDENT ( "," IDENT )* ";" ;
	type           --> "int" | "char" | "boolean" | IDENT ;
	subroutine     --> ( "constructor" | "function" | "method" )
	                   ( "void" | type ) IDENT "(" parameterList ")"
	                   subroutineBody ;
	parameterList  --> ( type IDENT ( "," type IDENT )* )? ;
	subroutineBody --> "{" varDec* statements "}" ;
	varDec         --> "var" type IDENT ( "," IDENT )* ";" ;
	statements     --> ( letStatement
	                   | ifStatement
	                   | whileStatement
	                   | doStatement
	                   | returnStatement )* ;
	letStatement   --> "let" IDENT ( "[" expression "]" )? "=" expression ";" ;
	ifStatement    --> "if" "(" expression ")" "{" statements "}"
	                   ( "else" "{" statements "}" )? ;
	whileStatement --> "while" "(" expression ")" "{" statements "}" ;
	doStatement    --> "do" subroutineCall ";" ;
	returnStatement--> "return" expression? ";" ;
	expression     --> term ( op term )* ;
	op             --> "+" | "-" | "*" | "/" | "&" | "|" | "<" | ">" | "=" ;
	term           --> INT | STRING
	                 | "true" | "false" | "null" | "this"
	                 | IDENT
	                 | IDENT "[" expression "]"
	                 | subroutineCall
	                 | "(" expression ")"
	                 | ( "-" | "~" ) term ;
	subroutineCall --> IDENT ( "." IDENT )? "(" expressionList ")" ;
	expressionList --> ( expression ( "," expression )* )? ;

Every non-terminal except type, op and subroutineCall becomes a Node labeled
with its name. The tokens of those three are appended to the enclosing node.

Binary operators are not given precedence: "1 + 2 * 3" is one expression
node with five children. Consumers resolve precedence themselves.

The parser fails on the first syntax violation. The returned *ParseError can
be matched with errors.Is against ErrUnexpectedToken, ErrEndOfInput and
ErrNestingTooDeep.
*/
package jack
