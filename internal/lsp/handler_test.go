package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"monkey/internal/lsp"
)

const testURI = "file:///tmp/test.mk"

type published struct {
	URI         protocol.DocumentUri
	Diagnostics []protocol.Diagnostic
}

func newContext(sent *[]published) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method != protocol.ServerTextDocumentPublishDiagnostics {
				return
			}
			p := params.(*protocol.PublishDiagnosticsParams)
			*sent = append(*sent, published{URI: p.URI, Diagnostics: p.Diagnostics})
		},
	}
}

func openDocument(t *testing.T, handler *lsp.MonkeyHandler, ctx *glsp.Context, text string) {
	err := handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        testURI,
			LanguageID: "monkey",
			Version:    1,
			Text:       text,
		},
	})
	require.NoError(t, err)
}

func TestInitialize(t *testing.T) {
	handler := lsp.NewMonkeyHandler()

	result, err := handler.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	initResult, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)

	syncOptions, ok := initResult.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	require.Equal(t, protocol.TextDocumentSyncKindFull, *syncOptions.Change)

	tokens, ok := initResult.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	require.Equal(t, lsp.SemanticTokenTypes, tokens.Legend.TokenTypes)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	var sent []published
	ctx := newContext(&sent)
	handler := lsp.NewMonkeyHandler()

	openDocument(t, handler, ctx, "let x = 5;\nlet y 6;\n@")

	require.Len(t, sent, 1)
	require.Equal(t, protocol.DocumentUri(testURI), sent[0].URI)

	diagnostics := sent[0].Diagnostics
	require.Len(t, diagnostics, 3)

	// Scanner diagnostics come first.
	require.Equal(t, "monkey-scanner", *diagnostics[0].Source)
	require.Equal(t, "unexpected character: '@'", diagnostics[0].Message)
	require.Equal(t, protocol.Position{Line: 2, Character: 0}, diagnostics[0].Range.Start)
	require.Equal(t, protocol.Position{Line: 2, Character: 1}, diagnostics[0].Range.End)
	require.Equal(t, "E0001", diagnostics[0].Code.Value)

	require.Equal(t, "monkey-parser", *diagnostics[1].Source)
	require.Equal(t, "next token: want=ASSIGN, got=INT(6)", diagnostics[1].Message)
	require.Equal(t, protocol.Position{Line: 1, Character: 6}, diagnostics[1].Range.Start)
	require.Equal(t, protocol.DiagnosticSeverityError, *diagnostics[1].Severity)

	require.Equal(t, "monkey-parser", *diagnostics[2].Source)
	require.Equal(t, "no prefix parser function for ILLEGAL(@) found", diagnostics[2].Message)

	program, ok := handler.Program(testURI)
	require.True(t, ok)
	require.Len(t, program.Statements, 1)
	require.Equal(t, "let x = 5;", program.String())
}

func TestDidChangeReplacesText(t *testing.T) {
	var sent []published
	ctx := newContext(&sent)
	handler := lsp.NewMonkeyHandler()

	openDocument(t, handler, ctx, "let x 5;")
	require.Len(t, sent[0].Diagnostics, 1)

	err := handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "let x = 5;"},
		},
	})
	require.NoError(t, err)

	require.Len(t, sent, 2)
	require.NotNil(t, sent[1].Diagnostics)
	require.Empty(t, sent[1].Diagnostics)

	program, ok := handler.Program(testURI)
	require.True(t, ok)
	require.Equal(t, "let x = 5;", program.String())
}

func TestDidChangeWithoutWholeText(t *testing.T) {
	var sent []published
	handler := lsp.NewMonkeyHandler()

	err := handler.TextDocumentDidChange(newContext(&sent), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
		},
	})
	require.Error(t, err)
	require.Empty(t, sent)
}

func TestDidCloseForgetsDocument(t *testing.T) {
	var sent []published
	ctx := newContext(&sent)
	handler := lsp.NewMonkeyHandler()

	openDocument(t, handler, ctx, "a + b")

	err := handler.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	_, ok := handler.Program(testURI)
	require.False(t, ok)
	require.Len(t, sent, 2)
	require.Empty(t, sent[1].Diagnostics)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	var sent []published
	ctx := newContext(&sent)
	handler := lsp.NewMonkeyHandler()

	openDocument(t, handler, ctx, "let x = 5;\nreturn x + 1;")

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 8)

	assertToken(t, &decoded[0], 1, 1, 3, "keyword", nil)
	assertToken(t, &decoded[1], 1, 5, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[2], 1, 7, 1, "operator", nil)
	assertToken(t, &decoded[3], 1, 9, 1, "number", nil)
	assertToken(t, &decoded[4], 2, 1, 6, "keyword", nil)
	assertToken(t, &decoded[5], 2, 8, 1, "variable", nil)
	assertToken(t, &decoded[6], 2, 10, 1, "operator", nil)
	assertToken(t, &decoded[7], 2, 12, 1, "number", nil)
}

func TestSemanticTokensForUnopenedFile(t *testing.T) {
	var sent []published
	ctx := newContext(&sent)
	handler := lsp.NewMonkeyHandler()

	absPath := filepath.Join(t.TempDir(), "disk.mk")
	require.NoError(t, os.WriteFile(absPath, []byte("fn == true"), 0644))
	uri := "file://" + filepath.ToSlash(absPath)

	tokens, err := handler.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 3)

	assertToken(t, &decoded[0], 1, 1, 2, "keyword", nil)
	assertToken(t, &decoded[1], 1, 4, 2, "operator", nil)
	assertToken(t, &decoded[2], 1, 7, 4, "keyword", nil)

	// Loading the file also publishes its diagnostics.
	require.Len(t, sent, 1)
	require.NotEmpty(t, sent[0].Diagnostics)
}

func TestSemanticTokensMissingFile(t *testing.T) {
	handler := lsp.NewMonkeyHandler()

	_, err := handler.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///does/not/exist.mk"},
	})
	require.Error(t, err)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1,
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.Equal(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
