package server

// Fixed bodies for the reserved paths. The demo frontend reads these
// shapes verbatim; nothing here is computed per request.

var apiPayload = map[string]any{
	"success": true,
	"data": map[string]any{
		"message":   "Perfect SPA API endpoint",
		"timestamp": "2025-09-26T10:30:00Z",
		"ai_enhancement": map[string]any{
			"claude_optimization": true,
			"gemini_analysis":     false,
			"performance_score":   95,
		},
	},
	"meta": map[string]any{
		"version":          "2.0.0",
		"ai_collaboration": "active",
	},
}

var metricsPayload = map[string]any{
	"performance": map[string]any{
		"bundle_size":    "6.04 KB",
		"load_time":      245,
		"memory_usage":   12.5,
		"cache_hit_rate": 0.89,
	},
	"security": map[string]any{
		"csp_violations": 0,
		"xss_attempts":   0,
		"csrf_tokens":    "valid",
	},
	"ai_collaboration": map[string]any{
		"claude_active":            true,
		"gemini_available":         false,
		"optimization_suggestions": 3,
	},
}

var healthPayload = map[string]any{
	"status":    "healthy",
	"version":   "2.0.0",
	"timestamp": "2025-09-26T10:30:00Z",
	"services": map[string]any{
		"spa_framework":          "active",
		"performance_monitoring": "active",
		"security_layer":         "active",
	},
	"ai_collaboration": map[string]any{
		"claude_code": "active",
		"gemini":      "standby",
		"hybrid_mode": "enabled",
	},
}

var manifestPayload = map[string]any{
	"name":             "Perfect SPA Framework v2.0",
	"short_name":       "Perfect SPA",
	"description":      "AI協力による次世代SPA",
	"start_url":        "/demo-perfect.html",
	"display":          "standalone",
	"background_color": "#007bff",
	"theme_color":      "#007bff",
	"icons": []map[string]any{
		{
			"src":   "/icons/icon-192.png",
			"sizes": "192x192",
			"type":  "image/png",
		},
	},
}

const serviceWorkerJS = `
// Perfect SPA Framework v2.0 Service Worker
const CACHE_NAME = 'perfect-spa-v2.0';
const urlsToCache = [
    '/demo-perfect.html',
    '/dist/spa-framework-perfect.iife.js',
    'https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css'
];

self.addEventListener('install', event => {
    event.waitUntil(
        caches.open(CACHE_NAME)
            .then(cache => cache.addAll(urlsToCache))
    );
});

self.addEventListener('fetch', event => {
    event.respondWith(
        caches.match(event.request)
            .then(response => response || fetch(event.request))
    );
});

self.addEventListener('message', event => {
    if (event.data && event.data.type === 'AI_ANALYSIS') {
        console.log('AI analysis received:', event.data.payload);
    }
});
`
