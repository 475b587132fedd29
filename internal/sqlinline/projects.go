package sqlinline

const QListProjects = `--sql a95c3e72-1b8d-4f0a-9c6e-4d2f7b5a8e30
select id, main_title, client, location, date_label, category, featured,
       overview, stats, services, images, client_logo, views, created_at, updated_at
from projects
where ($1::boolean is null or featured = $1::boolean)
  and ($2::text = '' or category = $2::text)
order by created_at desc
limit nullif($3::int, 0);
`

const QSelectProjectByID = `--sql c4e8f1a6-7d2b-4c5e-8f9a-0b3d6e1c4f75
select id, main_title, client, location, date_label, category, featured,
       overview, stats, services, images, client_logo, views, created_at, updated_at
from projects
where id = $1::text
limit 1;
`

const QInsertProject = `--sql 2d6b9f43-5e1a-4d8c-b2f7-9a0c3e6d1b58
insert into projects(
  id, main_title, client, location, date_label, category, featured,
  overview, stats, services, images, client_logo, views, created_at, updated_at
)
values ($1::text, $2::text, $3::text, $4::text, $5::text, $6::text, $7::boolean,
        $8::text, $9::jsonb, $10::jsonb, $11::jsonb, $12::text, 0, now(), now())
returning views, created_at, updated_at;
`

const QUpdateProject = `--sql 8a1d4c97-3f6e-4b2a-9d5c-7e0f2b8a4c63
update projects
set main_title = $2::text,
    client = $3::text,
    location = $4::text,
    date_label = $5::text,
    category = $6::text,
    featured = $7::boolean,
    overview = $8::text,
    stats = $9::jsonb,
    services = $10::jsonb,
    images = $11::jsonb,
    client_logo = $12::text,
    updated_at = now()
where id = $1::text
returning views, created_at, updated_at;
`

const QDeleteProject = `--sql 5c9e2b74-8a1f-4e6d-b3c0-2f7a9d4e6c81
delete from projects
where id = $1::text;
`

const QProjectExists = `--sql f1a7d3c5-4b8e-4f2a-8c6d-9e0b5a2f7d14
select exists(select 1 from projects where id = $1::text);
`

const QIncrementProjectViews = `--sql 3e5f8b21-6d9c-4a7e-b0f4-1c8a2e5d9b36
update projects
set views = views + 1
where id = $1::text;
`

const QTopProjectsByViews = `--sql d7b2f964-0c5a-4d3f-a8e1-6b9c4f7a2d50
select id, main_title, client, location, date_label, category, featured,
       overview, stats, services, images, client_logo, views, created_at, updated_at
from projects
order by views desc
limit $1::int;
`
