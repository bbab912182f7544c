package web

const chatPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Smart Assistant 🤖</title>
<style>
  body { background-color: #F5F7FA; font-family: sans-serif; }
  .main { max-width: 640px; margin: 2rem auto; background: white; padding: 2rem;
          border-radius: 15px; box-shadow: 0px 4px 12px rgba(0, 0, 0, 0.1); }
  h1 { text-align: center; color: #6A5ACD; }
  input { width: 75%; padding: 12px; border-radius: 10px; border: 1px solid #6A5ACD; font-size: 1.1em; }
  button { background-color: #6A5ACD; color: white; font-weight: bold; padding: 10px 16px;
           border-radius: 10px; font-size: 1.1em; border: none; cursor: pointer; }
  button:hover { background-color: #836FFF; }
  .plan { background: #EEF2FF; padding: 10px; border-radius: 8px; margin: 8px 0; }
  .observation { background: #ECFDF5; padding: 10px; border-radius: 8px; margin: 8px 0; }
  .answer { background: #F0F8FF; padding: 15px; border-radius: 10px;
            border-left: 5px solid #6A5ACD; margin: 8px 0; }
  .warning, .parse-error { background: #FEF3C7; padding: 10px; border-radius: 8px; margin: 8px 0; }
</style>
</head>
<body>
<div class="main">
  <h1>🧠 Smart Assistant Bot</h1>
  <p style="text-align:center">Ask anything — Weather, Search, &amp; More.</p>
  <form id="ask">
    <input id="query" placeholder="E.g. What's the weather in Lahore?" autocomplete="off">
    <button type="submit">Ask 💬</button>
  </form>
  <div id="log"></div>
</div>
<script>
let sessionId = "";
const log = document.getElementById("log");

document.getElementById("ask").addEventListener("submit", async (event) => {
  event.preventDefault();
  const input = document.getElementById("query");
  const query = input.value.trim();
  if (!query) return;
  input.value = "";

  const resp = await fetch("/api/chat", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({session_id: sessionId, query: query}),
  });
  if (!resp.ok) {
    appendStep("warning", "Request failed: " + resp.status);
    return;
  }
  const data = await resp.json();
  sessionId = data.session_id;
  for (const step of data.steps) {
    appendStep(step.kind, step.content);
  }
});

function appendStep(kind, content) {
  const div = document.createElement("div");
  div.className = kind;
  div.textContent = content;
  log.appendChild(div);
}
</script>
</body>
</html>
`
