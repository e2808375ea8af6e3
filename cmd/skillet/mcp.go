package main

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillet/pkg/logger"
	"github.com/jingkaihe/skillet/pkg/presenter"
	"github.com/jingkaihe/skillet/pkg/skills"
	"github.com/jingkaihe/skillet/pkg/version"
)

const skillURIScheme = "skill://"

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve skills over the Model Context Protocol",
	Long: `MCP serves the discovered skills over stdio using the Model Context
Protocol: each skill becomes a prompt carrying its instructions, its SKILL.md
is exposed as a skill:// resource, and bundled files are readable through the
skill://{name}/{path} resource template with the usual traversal checks.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		collection, err := discoverCollection(ctx)
		if err != nil {
			presenter.Error(err, "Failed to discover skills")
			os.Exit(1)
		}

		s := server.NewMCPServer("skillet", version.Get().Version,
			server.WithPromptCapabilities(false),
			server.WithResourceCapabilities(false, false),
		)

		names := make([]string, 0, len(collection))
		for name := range collection {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			skill := collection[name]
			s.AddPrompt(
				mcp.NewPrompt(name, mcp.WithPromptDescription(skill.Description())),
				skillPromptHandler(skill),
			)
			s.AddResource(
				mcp.NewResource(
					skillURIScheme+name+"/"+skills.SkillFileName,
					name,
					mcp.WithResourceDescription(skill.Description()),
					mcp.WithMIMEType("text/markdown"),
				),
				skillDocumentHandler(skill),
			)
		}

		s.AddResourceTemplate(
			mcp.NewResourceTemplate(
				skillURIScheme+"{name}/{path}",
				"skill-files",
				mcp.WithTemplateDescription("Read a file bundled with an installed skill"),
				mcp.WithTemplateMIMEType("text/plain"),
			),
			skillFileHandler(collection),
		)

		// stdout carries the protocol; everything else goes through the
		// stderr logger.
		logger.G(ctx).WithField("skills", len(collection)).Info("serving skills over MCP stdio")
		if err := server.NewStdioServer(s).Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			presenter.Error(err, "MCP server exited")
			os.Exit(1)
		}
	},
}

// skillPromptHandler serves the skill body as a user-role prompt message,
// ready to splice into an agent conversation.
func skillPromptHandler(skill *skills.Skill) server.PromptHandlerFunc {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return mcp.NewGetPromptResult(skill.Description(), []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(skill.Body)),
		}), nil
	}
}

// skillDocumentHandler serves the raw SKILL.md, frontmatter included.
func skillDocumentHandler(skill *skills.Skill) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := os.ReadFile(filepath.Join(skill.Path, skills.SkillFileName))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", skills.SkillFileName)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/markdown",
				Text:     string(content),
			},
		}, nil
	}
}

// skillFileHandler resolves skill://{name}/{path} URIs through ResolvePath,
// so clients get the same traversal protection agents do.
func skillFileHandler(collection map[string]*skills.Skill) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name, relative, err := parseSkillURI(request.Params.URI)
		if err != nil {
			return nil, err
		}

		skill, ok := collection[name]
		if !ok {
			return nil, errors.Errorf("skill %q not found", name)
		}

		resolved, err := skill.ResolvePath(relative)
		if err != nil {
			return nil, err
		}

		content, err := os.ReadFile(resolved)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", relative)
		}

		if isBinaryContent(content) {
			return []mcp.ResourceContents{
				mcp.BlobResourceContents{
					URI:      request.Params.URI,
					MIMEType: "application/octet-stream",
					Blob:     base64.StdEncoding.EncodeToString(content),
				},
			}, nil
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     string(content),
			},
		}, nil
	}
}

// isBinaryContent reports whether content looks binary by checking the first
// 512 bytes for NULL bytes.
func isBinaryContent(content []byte) bool {
	probe := content
	if len(probe) > 512 {
		probe = probe[:512]
	}
	for _, b := range probe {
		if b == 0 {
			return true
		}
	}
	return false
}

func parseSkillURI(uri string) (name string, relative string, err error) {
	if !strings.HasPrefix(uri, skillURIScheme) {
		return "", "", errors.Errorf("unsupported URI %q, expected %s{name}/{path}", uri, skillURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, skillURIScheme), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("malformed skill URI %q", uri)
	}
	return parts[0], parts[1], nil
}
