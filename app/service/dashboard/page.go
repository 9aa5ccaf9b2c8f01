package service

import "github.com/gofiber/fiber/v2"

// GetPage serves the dashboard itself. The page is a single static document
// baked into the binary; everything dynamic goes through the JSON API and
// the chart endpoints.
func (s *DashboardService) GetPage(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(dashboardHTML)
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Academy Dashboard</title>
<style>
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    margin: 0;
    background: #f4f6f8;
    color: #1f2933;
  }
  header {
    background: #243b53;
    color: #fff;
    padding: 14px 24px;
    font-size: 18px;
    font-weight: 600;
  }
  main { max-width: 860px; margin: 24px auto; padding: 0 16px; }
  .card {
    background: #fff;
    border: 1px solid #d9e2ec;
    border-radius: 6px;
    padding: 16px 20px;
    margin-bottom: 20px;
  }
  table { border-collapse: collapse; width: 100%; }
  th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #d9e2ec; }
  th { font-weight: 600; color: #486581; }
  td.num { text-align: right; font-variant-numeric: tabular-nums; }
  .spinner {
    display: inline-block;
    width: 16px;
    height: 16px;
    border: 2px solid #bcccdc;
    border-top-color: #243b53;
    border-radius: 50%;
    animation: spin 0.8s linear infinite;
    vertical-align: middle;
    margin-left: 8px;
  }
  @keyframes spin { to { transform: rotate(360deg); } }
  .tabs { margin-bottom: 12px; }
  .tab-btn {
    background: #fff;
    border: 1px solid #9fb3c8;
    color: #334e68;
    padding: 6px 16px;
    border-radius: 4px;
    cursor: pointer;
    font-size: 14px;
    margin-right: 8px;
  }
  .tab-btn.active {
    background: #243b53;
    border-color: #243b53;
    color: #fff;
  }
  .chart img { max-width: 100%; display: block; margin: 0 auto; }
  #detail-wrap { display: none; }
</style>
</head>
<body>
<header>Academy Dashboard</header>
<main>
  <div class="card">
    <h3 style="margin-top:0">Summary<span id="spinner" class="spinner"></span></h3>
    <table>
      <tr><th>Total Students</th><td class="num" id="total-students">0</td></tr>
      <tr><th>Total Courses</th><td class="num" id="total-courses">0</td></tr>
      <tr><th>Total Attendance</th><td class="num" id="total-attendance">0</td></tr>
    </table>
  </div>

  <div class="card chart">
    <img id="overview-chart" alt="Overview chart">
  </div>

  <div class="tabs">
    <button class="tab-btn active" data-mode="overview">Overview</button>
    <button class="tab-btn" data-mode="students">Students</button>
    <button class="tab-btn" data-mode="courses">Courses</button>
  </div>

  <div class="card chart" id="detail-wrap">
    <img id="detail-chart" alt="Detail chart">
  </div>
</main>

<script>
  async function getJSON(url) {
    const res = await fetch(url);
    if (!res.ok) throw new Error('request failed: ' + res.status);
    return res.json();
  }

  function bust(url) {
    return url + '?t=' + Date.now();
  }

  async function refresh() {
    const data = await getJSON('/api/v1/dashboard');
    const stats = data.statistics;

    document.getElementById('total-students').textContent = stats.totalStudents;
    document.getElementById('total-courses').textContent = stats.totalCourses;
    document.getElementById('total-attendance').textContent = stats.totalAttendance;

    document.querySelectorAll('.tab-btn').forEach(function (btn) {
      btn.classList.toggle('active', btn.dataset.mode === data.mode);
    });

    document.getElementById('overview-chart').src = bust('/charts/overview.png');

    const detailWrap = document.getElementById('detail-wrap');
    if (data.mode === 'overview') {
      detailWrap.style.display = 'none';
    } else {
      detailWrap.style.display = 'block';
      document.getElementById('detail-chart').src = bust('/charts/detail.png');
    }

    const spinner = document.getElementById('spinner');
    if (data.loading) {
      spinner.style.display = 'inline-block';
      setTimeout(refresh, 500);
    } else {
      spinner.style.display = 'none';
    }
  }

  async function setMode(mode) {
    await fetch('/api/v1/dashboard/view', {
      method: 'PUT',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ mode: mode })
    });
    refresh();
  }

  document.querySelectorAll('.tab-btn').forEach(function (btn) {
    btn.addEventListener('click', function () { setMode(btn.dataset.mode); });
  });

  // Broken detail renders (e.g. nothing to chart yet) just hide the image.
  document.getElementById('detail-chart').addEventListener('error', function () {
    this.removeAttribute('src');
  });

  refresh();
</script>
</body>
</html>
`
