package page

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - Video Highlights</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }
        .container { max-width: 1200px; margin: 0 auto; }
        .header { text-align: center; margin-bottom: 40px; color: white; }
        .header h1 { font-size: 2.5rem; margin-bottom: 10px; text-shadow: 2px 2px 4px rgba(0,0,0,0.3); }
        .header p { font-size: 1.2rem; opacity: 0.9; }
        .video-container { margin-bottom: 40px; text-align: center; }
        .video-wrapper {
            position: relative; padding-bottom: 56.25%; height: 0; overflow: hidden;
            border-radius: 12px; box-shadow: 0 10px 30px rgba(0,0,0,0.3);
        }
        .video-wrapper iframe { position: absolute; top: 0; left: 0; width: 100%; height: 100%; border: none; }
        .highlights-grid {
            display: grid; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 25px; margin-top: 40px;
        }
        .highlight-card {
            background: rgba(255, 255, 255, 0.1); backdrop-filter: blur(10px);
            border-radius: 16px; padding: 20px; border: 1px solid rgba(255, 255, 255, 0.2);
            transition: all 0.3s ease; color: white; cursor: pointer;
        }
        .highlight-card:hover {
            transform: translateY(-5px); background: rgba(255, 255, 255, 0.15);
            box-shadow: 0 15px 35px rgba(0,0,0,0.2);
        }
        .thumbnail { width: 100%; height: 180px; object-fit: cover; border-radius: 8px; margin-bottom: 15px; }
        .summary { font-size: 1rem; line-height: 1.6; margin-bottom: 15px; min-height: 80px; }
        .timestamp { font-size: 0.9rem; opacity: 0.8; margin-bottom: 10px; }
        .watch-btn {
            display: inline-block; background: linear-gradient(135deg, #ff6b6b, #ee5a24);
            color: white; border: none; font: inherit; cursor: pointer;
            padding: 10px 20px; border-radius: 25px; font-weight: 600;
        }
        .footer { text-align: center; margin-top: 60px; color: rgba(255, 255, 255, 0.7); font-size: 0.9rem; }
        @media (max-width: 768px) {
            .header h1 { font-size: 2rem; }
            .highlights-grid { grid-template-columns: 1fr; }
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            <p>Key highlights from the video</p>
        </div>

{{- if .VideoID}}
        <div class="video-container">
            <div class="video-wrapper">
                <iframe id="youtube-player" src="https://www.youtube.com/embed/{{.VideoID}}?enablejsapi=1" allowfullscreen></iframe>
            </div>
        </div>
{{- end}}

        <div class="highlights-grid">
{{- range .Cards}}
            <div class="highlight-card" data-timestamp="{{.StartSeconds}}">
                {{- if .ThumbnailFile}}
                <img src="{{.ThumbnailFile}}" alt="Thumbnail {{.Index}}" class="thumbnail">
                {{- else if $.VideoID}}
                <img src="{{$.PlaceholderThumbURL}}" alt="Thumbnail {{.Index}}" class="thumbnail">
                {{- end}}
                <div class="summary">{{.Summary}}</div>
                <div class="timestamp">Starts at {{.Timestamp}}</div>
                <button class="watch-btn">Watch Segment</button>
            </div>
{{- end}}
        </div>

        <div class="footer">
            <p>Generated with highlight-flow</p>
        </div>
    </div>

    <script>
        let player;
        let playerReady = false;

        const tag = document.createElement('script');
        tag.src = "https://www.youtube.com/iframe_api";
        document.getElementsByTagName('script')[0].parentNode.insertBefore(tag, document.getElementsByTagName('script')[0]);

        function onYouTubeIframeAPIReady() {
            player = new YT.Player('youtube-player', {
                events: {
                    'onReady': function() { playerReady = true; },
                    'onError': function() { playerReady = false; }
                }
            });
        }

        function seekToTime(seconds) {
            if (!document.getElementById('youtube-player')) {
                return;
            }
            if (playerReady && player && player.seekTo) {
                player.seekTo(seconds, true);
                player.playVideo();
            } else {
                const iframe = document.getElementById('youtube-player');
                const baseUrl = iframe.src.split('?')[0];
                iframe.src = baseUrl + '?enablejsapi=1&start=' + seconds + '&autoplay=1';
            }
            document.querySelector('.video-container').scrollIntoView({ behavior: 'smooth', block: 'center' });
        }

        document.addEventListener('DOMContentLoaded', function() {
            document.querySelectorAll('.highlight-card').forEach(card => {
                card.addEventListener('click', function() {
                    const timestamp = parseInt(this.getAttribute('data-timestamp'));
                    if (!isNaN(timestamp)) {
                        seekToTime(timestamp);
                    }
                });
            });
        });
    </script>
</body>
</html>
`
