package sqlinline

const QInsertAnalyticsEvent = `--sql 0b4e7a29-3c8f-4d1b-9a6e-5f2d8c0b4a77
insert into analytics_events(id, type, page, project_id, ip, user_agent, referrer, country, created_at)
values ($1::text, $2::text, $3::text, nullif($4::text, ''), $5::text, $6::text, $7::text, $8::text, now());
`

const QCountEventsByType = `--sql 6f8c1d53-9b2e-4a4f-8d7c-3e0a5b9f1c62
select count(*)
from analytics_events
where type = $1::text
  and ($2::timestamptz is null or created_at >= $2::timestamptz);
`

const QDailyPageViews = `--sql 92e4b7f0-5a1c-4e8d-b6f3-8d2c7a0e4b95
select to_char((created_at at time zone 'UTC')::date, 'YYYY-MM-DD') as day, count(*)
from analytics_events
where type = 'page_view'
  and created_at >= $1::timestamptz
group by day
order by day asc;
`

const QCountDistinctIPs = `--sql b5d0f382-7e4a-4c6b-9f1d-0a8e3c5b7f24
select count(distinct ip)
from analytics_events
where type = 'page_view'
  and created_at >= $1::timestamptz;
`
