// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package visitorkeys

// ESTree is the base traversal schema for standard ESTree nodes, including
// JSX.
var ESTree = Keys{
	"ArrayExpression":          {"elements"},
	"ArrayPattern":             {"elements"},
	"ArrowFunctionExpression":  {"params", "body"},
	"AssignmentExpression":     {"left", "right"},
	"AssignmentPattern":        {"left", "right"},
	"AwaitExpression":          {"argument"},
	"BinaryExpression":         {"left", "right"},
	"BlockStatement":           {"body"},
	"BreakStatement":           {"label"},
	"CallExpression":           {"callee", "arguments"},
	"CatchClause":              {"param", "body"},
	"ChainExpression":          {"expression"},
	"ClassBody":                {"body"},
	"ClassDeclaration":         {"id", "superClass", "body"},
	"ClassExpression":          {"id", "superClass", "body"},
	"ConditionalExpression":    {"test", "consequent", "alternate"},
	"ContinueStatement":        {"label"},
	"DebuggerStatement":        {},
	"DoWhileStatement":         {"body", "test"},
	"EmptyStatement":           {},
	"ExportAllDeclaration":     {"exported", "source"},
	"ExportDefaultDeclaration": {"declaration"},
	"ExportNamedDeclaration":   {"declaration", "specifiers", "source"},
	"ExportSpecifier":          {"exported", "local"},
	"ExpressionStatement":      {"expression"},
	"ForInStatement":           {"left", "right", "body"},
	"ForOfStatement":           {"left", "right", "body"},
	"ForStatement":             {"init", "test", "update", "body"},
	"FunctionDeclaration":      {"id", "params", "body"},
	"FunctionExpression":       {"id", "params", "body"},
	"Identifier":               {},
	"IfStatement":              {"test", "consequent", "alternate"},
	"ImportDeclaration":        {"specifiers", "source"},
	"ImportDefaultSpecifier":   {"local"},
	"ImportExpression":         {"source"},
	"ImportNamespaceSpecifier": {"local"},
	"ImportSpecifier":          {"imported", "local"},
	"JSXAttribute":             {"name", "value"},
	"JSXClosingElement":        {"name"},
	"JSXClosingFragment":       {},
	"JSXElement":               {"openingElement", "children", "closingElement"},
	"JSXEmptyExpression":       {},
	"JSXExpressionContainer":   {"expression"},
	"JSXFragment":              {"openingFragment", "children", "closingFragment"},
	"JSXIdentifier":            {},
	"JSXMemberExpression":      {"object", "property"},
	"JSXNamespacedName":        {"namespace", "name"},
	"JSXOpeningElement":        {"name", "attributes"},
	"JSXOpeningFragment":       {},
	"JSXSpreadAttribute":       {"argument"},
	"JSXSpreadChild":           {"expression"},
	"JSXText":                  {},
	"LabeledStatement":         {"label", "body"},
	"Literal":                  {},
	"LogicalExpression":        {"left", "right"},
	"MemberExpression":         {"object", "property"},
	"MetaProperty":             {"meta", "property"},
	"MethodDefinition":         {"key", "value"},
	"NewExpression":            {"callee", "arguments"},
	"ObjectExpression":         {"properties"},
	"ObjectPattern":            {"properties"},
	"PrivateIdentifier":        {},
	"Program":                  {"body"},
	"Property":                 {"key", "value"},
	"PropertyDefinition":       {"key", "value"},
	"RestElement":              {"argument"},
	"ReturnStatement":          {"argument"},
	"SequenceExpression":       {"expressions"},
	"SpreadElement":            {"argument"},
	"StaticBlock":              {"body"},
	"Super":                    {},
	"SwitchCase":               {"test", "consequent"},
	"SwitchStatement":          {"discriminant", "cases"},
	"TaggedTemplateExpression": {"tag", "quasi"},
	"TemplateElement":          {},
	"TemplateLiteral":          {"quasis", "expressions"},
	"ThisExpression":           {},
	"ThrowStatement":           {"argument"},
	"TryStatement":             {"block", "handler", "finalizer"},
	"UnaryExpression":          {"argument"},
	"UpdateExpression":         {"argument"},
	"VariableDeclaration":      {"declarations"},
	"VariableDeclarator":       {"id", "init"},
	"WhileStatement":           {"test", "body"},
	"WithStatement":            {"object", "body"},
	"YieldExpression":          {"argument"},
}
