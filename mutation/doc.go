// Package mutation pairs request payloads with their GraphQL mutation
// documents. The etch-packet mutation additionally extracts embedded
// binary uploads into multipart file parts, leaving a null placeholder
// in the operation variables as the GraphQL multipart request spec
// requires.
package mutation
