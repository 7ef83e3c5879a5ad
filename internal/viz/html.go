package viz

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
)

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate = template.Must(template.New("viz").Parse(htmlTemplate))

// ErrInvalidLayout is returned for layout names GenerateHTML does not know.
var ErrInvalidLayout = errors.New("invalid layout")

// HTMLOptions configures HTML generation.
type HTMLOptions struct {
	Layout string // "force", "circle", "grid" or "tree"
	Title  string // page title; defaults to "Traceability graph"
}

// DefaultOptions returns default HTML generation options.
func DefaultOptions() HTMLOptions {
	return HTMLOptions{Layout: "force"}
}

// ValidLayouts lists the supported layout algorithm names.
var ValidLayouts = []string{"force", "circle", "grid", "tree"}

const defaultTitle = "Traceability graph"

// GenerateHTML generates a self-contained HTML file for the graph visualization.
func GenerateHTML(graph *GraphData, opts HTMLOptions) (string, error) {
	if graph == nil {
		return "", fmt.Errorf("graph cannot be nil")
	}

	if err := validateLayout(opts.Layout); err != nil {
		return "", err
	}

	title := opts.Title
	if title == "" {
		title = defaultTitle
	}

	if graph.IsEmpty() {
		return generateEmptyHTML(title)
	}

	graphJSON, err := graph.ToCytoscapeJSON()
	if err != nil {
		return "", err
	}
	styleJSON, err := stylesheetJSON()
	if err != nil {
		return "", err
	}

	data := templateData{
		Title:     title,
		GraphJSON: template.JS(graphJSON),
		StyleJSON: template.JS(styleJSON),
		Layout:    layoutToCytoscape(opts.Layout),
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering visualization: %w", err)
	}

	return buf.String(), nil
}

// validateLayout checks if the layout option is valid.
func validateLayout(layout string) error {
	switch layout {
	case "", "force", "circle", "grid", "tree":
		return nil
	default:
		return fmt.Errorf("%w %q: must be one of %v", ErrInvalidLayout, layout, ValidLayouts)
	}
}

// templateData holds data for the HTML template.
type templateData struct {
	Title     string
	GraphJSON template.JS
	StyleJSON template.JS
	Layout    string
	Empty     bool
}

// layoutToCytoscape converts user-friendly layout names to Cytoscape.js layout algorithm names.
func layoutToCytoscape(layout string) string {
	switch layout {
	case "circle":
		return "circle"
	case "grid":
		return "grid"
	case "tree":
		return "breadthfirst"
	default:
		return "cose"
	}
}

// generateEmptyHTML renders the page shown when the dataset has no nodes.
func generateEmptyHTML(title string) (string, error) {
	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, templateData{Title: title, Empty: true}); err != nil {
		return "", fmt.Errorf("rendering visualization: %w", err)
	}
	return buf.String(), nil
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  {{- if not .Empty}}
  <script src="https://unpkg.com/cytoscape@3/dist/cytoscape.min.js"></script>
  {{- end}}
  <style>
    * {
      box-sizing: border-box;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0;
      padding: 0;
      background: #f5f5f5;
    }
    #cy {
      width: 100%;
      height: 100vh;
      background: white;
    }
    .empty-state {
      display: flex;
      flex-direction: column;
      justify-content: center;
      align-items: center;
      height: 100vh;
      color: #666;
    }
    #tooltip {
      position: absolute;
      display: none;
      background: white;
      border: 1px solid #ccc;
      border-radius: 4px;
      padding: 8px 12px;
      box-shadow: 0 2px 8px rgba(0,0,0,0.15);
      max-width: 320px;
      font-size: 13px;
      z-index: 1000;
      pointer-events: none;
    }
    #tooltip .type {
      font-size: 10px;
      text-transform: uppercase;
      color: #888;
      margin-bottom: 4px;
    }
    #tooltip .label {
      font-weight: bold;
      margin-bottom: 4px;
    }
    #tooltip .detail {
      color: #555;
      margin: 2px 0;
    }
    #tooltip .issue {
      color: #c0392b;
      margin: 2px 0;
    }
  </style>
</head>
<body>
{{- if .Empty}}
  <div class="empty-state">
    <h2>No nodes</h2>
    <p>The selected dataset version has no needs to draw.</p>
  </div>
{{- else}}
  <div id="cy"></div>
  <div id="tooltip"></div>
  <script>
    (function() {
      const graphData = {{.GraphJSON}};
      const stylesheet = {{.StyleJSON}};
      const layout = {{.Layout}};

      const cy = cytoscape({
        container: document.getElementById('cy'),
        elements: graphData,
        style: stylesheet,
        layout: {
          name: layout,
          animate: false,
          directed: true,
          nodeRepulsion: 8000,
          idealEdgeLength: 100,
          edgeElasticity: 100
        }
      });

      const tooltip = document.getElementById('tooltip');

      function escapeHtml(str) {
        if (!str) return '';
        return String(str).replace(/&/g, '&amp;')
                          .replace(/</g, '&lt;')
                          .replace(/>/g, '&gt;')
                          .replace(/"/g, '&quot;');
      }

      function showTooltip(evt, content) {
        tooltip.innerHTML = content;
        tooltip.style.display = 'block';
        const pos = evt.renderedPosition || evt.position;
        tooltip.style.left = (pos.x + 15) + 'px';
        tooltip.style.top = (pos.y + 15) + 'px';
      }

      function hideTooltip() {
        tooltip.style.display = 'none';
      }

      function getNodeTooltip(node) {
        const data = node.data();
        let html = '<div class="type">' + escapeHtml(data.kind) + '</div>';
        html += '<div class="label">' + escapeHtml(data.label) + '</div>';
        if (data.title) html += '<div class="detail">' + escapeHtml(data.title) + '</div>';
        if (data.status) html += '<div class="detail">Status: ' + escapeHtml(data.status) + '</div>';
        if (data.url) html += '<div class="detail">' + escapeHtml(data.url) + '</div>';
        html += '<div class="detail">Connections: ' + data.connectionCount + '</div>';
        (data.issues || []).forEach(function(i) {
          html += '<div class="issue">' + escapeHtml(i) + '</div>';
        });
        return html;
      }

      cy.on('mouseover', 'node', function(evt) {
        showTooltip(evt, getNodeTooltip(evt.target));
      });
      cy.on('mouseout', 'node', hideTooltip);

      cy.on('mouseover', 'edge', function(evt) {
        const data = evt.target.data();
        showTooltip(evt, '<div class="label">' + escapeHtml(data.source) + ' → ' + escapeHtml(data.target) + '</div>');
      });
      cy.on('mouseout', 'edge', hideTooltip);

      // Tap a node to highlight its neighborhood; tap the background to reset.
      cy.on('tap', 'node', function(evt) {
        const neighborhood = evt.target.neighborhood().add(evt.target);
        cy.elements().removeClass('highlighted dimmed');
        neighborhood.addClass('highlighted');
        cy.elements().not(neighborhood).addClass('dimmed');
      });
      cy.on('tap', function(evt) {
        if (evt.target === cy) {
          cy.elements().removeClass('highlighted dimmed');
        }
      });
    })();
  </script>
{{- end}}
</body>
</html>`
